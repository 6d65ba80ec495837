package session

import (
	"context"
	"errors"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/storage"
	"github.com/staff-portal-core/internal/store"
)

// Manager владеет состоянием текущего сеанса. Долговременный маркер -
// email учётной записи; он служит только для восстановления сеанса после
// перезапуска и не является токеном безопасности.
type Manager struct {
	store   *store.Store
	kv      storage.KeyValueStore
	current *domain.Account
}

// NewManager создаёт новый менеджер сеанса
func NewManager(st *store.Store, kv storage.KeyValueStore) *Manager {
	return &Manager{store: st, kv: kv}
}

// Current возвращает учётную запись текущего сеанса или nil
func (m *Manager) Current() *domain.Account {
	return m.current
}

// Authenticate проверяет пару email/пароль точным сравнением строк.
// Совпадение с verified=true открывает сеанс и записывает маркер; совпадение
// с verified=false возвращает ErrEmailNotVerified; иначе ErrInvalidCredentials.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	acc, err := m.store.FindAccountByEmail(email)
	if err != nil || acc.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	if !acc.Verified {
		return nil, domain.ErrEmailNotVerified
	}

	if err := m.kv.Set(ctx, storage.KeyAuthToken, acc.Email); err != nil {
		return nil, err
	}
	m.current = acc
	return acc, nil
}

// Restore восстанавливает сеанс по сохранённому маркеру. Вызывается один раз
// на старте процесса; маркер без живой учётной записи молча игнорируется.
func (m *Manager) Restore(ctx context.Context) (*domain.Account, error) {
	marker, ok, err := m.kv.Get(ctx, storage.KeyAuthToken)
	if err != nil || !ok {
		return nil, err
	}

	acc, err := m.store.FindAccountByEmail(marker)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}

	m.current = acc
	return acc, nil
}

// Clear завершает сеанс и удаляет маркер
func (m *Manager) Clear(ctx context.Context) error {
	m.current = nil
	return m.kv.Delete(ctx, storage.KeyAuthToken)
}

// SetPendingVerification запоминает email, ожидающий подтверждения
func (m *Manager) SetPendingVerification(ctx context.Context, email string) error {
	return m.kv.Set(ctx, storage.KeyUnverifiedEmail, email)
}

// PendingVerification возвращает email, ожидающий подтверждения
func (m *Manager) PendingVerification(ctx context.Context) (string, bool, error) {
	return m.kv.Get(ctx, storage.KeyUnverifiedEmail)
}

// ClearPendingVerification снимает отметку об ожидании подтверждения
func (m *Manager) ClearPendingVerification(ctx context.Context) error {
	return m.kv.Delete(ctx, storage.KeyUnverifiedEmail)
}
