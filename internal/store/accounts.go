package store

import (
	"context"

	"github.com/staff-portal-core/internal/domain"
)

// Accounts возвращает учётные записи в порядке добавления
func (s *Store) Accounts() []domain.Account {
	return append([]domain.Account{}, s.data.Accounts...)
}

// FindAccountByID возвращает учётную запись по идентификатору
func (s *Store) FindAccountByID(id int64) (*domain.Account, error) {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID == id {
			acc := s.data.Accounts[i]
			return &acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// FindAccountByEmail возвращает учётную запись по email (точное совпадение)
func (s *Store) FindAccountByEmail(email string) (*domain.Account, error) {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].Email == email {
			acc := s.data.Accounts[i]
			return &acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// AddAccount добавляет учётную запись и сохраняет граф
func (s *Store) AddAccount(ctx context.Context, acc domain.Account) error {
	s.data.Accounts = append(s.data.Accounts, acc)
	return s.Save(ctx)
}

// UpdateAccount замещает учётную запись с тем же id и сохраняет граф
func (s *Store) UpdateAccount(ctx context.Context, acc domain.Account) error {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID == acc.ID {
			s.data.Accounts[i] = acc
			return s.Save(ctx)
		}
	}
	return domain.ErrAccountNotFound
}

// DeleteAccount удаляет учётную запись по id и сохраняет граф
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].ID == id {
			s.data.Accounts = append(s.data.Accounts[:i], s.data.Accounts[i+1:]...)
			return s.Save(ctx)
		}
	}
	return domain.ErrAccountNotFound
}
