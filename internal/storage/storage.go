package storage

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Ключи долговременного хранилища. Схема повторяет раскладку
// браузерного localStorage исходного приложения.
const (
	KeyDatabase        = "ipt_demo_v1"
	KeyAuthToken       = "auth_token"
	KeyUnverifiedEmail = "unverified_email"
)

// Entry - строка таблицы key-value хранилища
type Entry struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

// TableName задаёт имя таблицы для GORM
func (Entry) TableName() string {
	return "storage_entries"
}

// KeyValueStore определяет интерфейс долговременного key-value хранилища
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGorm создаёт хранилище поверх таблицы storage_entries
func NewGorm(db *gorm.DB) KeyValueStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Save(&Entry{Key: key, Value: value}).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemory создаёт эфемерное хранилище в памяти процесса.
// Используется драйвером memory и в тестах.
func NewMemory() KeyValueStore {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
