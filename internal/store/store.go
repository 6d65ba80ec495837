package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/storage"
)

// Store владеет графом данных приложения в памяти и его долговременной
// копией в key-value хранилище. Единственный писатель; каждая мутация
// синхронно сохраняет весь граф целиком.
type Store struct {
	kv     storage.KeyValueStore
	logger *slog.Logger
	data   *domain.Database
	nextID int64
}

// New создаёт новый экземпляр хранилища данных
func New(kv storage.KeyValueStore, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
		data:   &domain.Database{},
		nextID: 1,
	}
}

// seedDefaults возвращает стартовый набор данных: одна учётная запись
// администратора и два подразделения.
func seedDefaults() *domain.Database {
	return &domain.Database{
		Accounts: []domain.Account{
			{
				ID:        1,
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "admin123",
				Role:      domain.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []domain.Department{
			{ID: 1, Name: "Engineering", Description: "Software development and engineering team"},
			{ID: 2, Name: "HR", Description: "Human resources and recruitment"},
		},
		Employees: []domain.Employee{},
		Requests:  []domain.Request{},
	}
}

// Load читает граф данных из хранилища. Отсутствующий или нечитаемый блок
// заменяется стартовым набором; частично повреждённый (валидный JSON без
// одной из коллекций) чинится поколлекционно.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, storage.KeyDatabase)
	if err != nil {
		return err
	}

	if !ok {
		s.data = seedDefaults()
		s.resetNextID()
		return s.Save(ctx)
	}

	var db domain.Database
	if err := json.Unmarshal([]byte(raw), &db); err != nil {
		s.logger.Warn("stored data is malformed, reseeding defaults", slog.Any("error", err))
		s.data = seedDefaults()
		s.resetNextID()
		return s.Save(ctx)
	}

	// Восстанавливаем отсутствующие коллекции, сохраняя существующие
	if db.Accounts == nil {
		db.Accounts = []domain.Account{}
	}
	if db.Departments == nil {
		db.Departments = []domain.Department{}
	}
	if db.Employees == nil {
		db.Employees = []domain.Employee{}
	}
	if db.Requests == nil {
		db.Requests = []domain.Request{}
	}

	s.data = &db
	s.resetNextID()
	return nil
}

// Save сериализует весь граф и безусловно перезаписывает долговременную копию
func (s *Store) Save(ctx context.Context) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyDatabase, string(raw))
}

// NewID выдаёт следующий идентификатор. Монотонный счётчик общий для всех
// сущностей, инициализируется от максимального id загруженного графа.
func (s *Store) NewID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) resetNextID() {
	var max int64
	for _, a := range s.data.Accounts {
		if a.ID > max {
			max = a.ID
		}
	}
	for _, d := range s.data.Departments {
		if d.ID > max {
			max = d.ID
		}
	}
	for _, e := range s.data.Employees {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, r := range s.data.Requests {
		if r.ID > max {
			max = r.ID
		}
	}
	s.nextID = max + 1
}

// Snapshot возвращает глубокую копию графа данных для отрисовки
func (s *Store) Snapshot() domain.Database {
	snap := domain.Database{
		Accounts:    append([]domain.Account{}, s.data.Accounts...),
		Departments: append([]domain.Department{}, s.data.Departments...),
		Employees:   append([]domain.Employee{}, s.data.Employees...),
		Requests:    append([]domain.Request{}, s.data.Requests...),
	}
	for i := range snap.Requests {
		snap.Requests[i].Items = append([]domain.RequestItem{}, snap.Requests[i].Items...)
	}
	return snap
}
