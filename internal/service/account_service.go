package service

import (
	"context"
	"strings"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/store"
)

const minPasswordLen = 6

// AccountService определяет бизнес-логику учётных записей
type AccountService interface {
	Register(ctx context.Context, form *dto.RegisterForm) (*domain.Account, error)
	Verify(ctx context.Context) (*domain.Account, error)
	List() []domain.Account
	Get(id int64) (*domain.Account, error)
	Create(ctx context.Context, form *dto.AccountForm) (*domain.Account, error)
	Update(ctx context.Context, id int64, form *dto.AccountForm) (*domain.Account, error)
	ResetPassword(ctx context.Context, id int64, password string) error
	Delete(ctx context.Context, principal *domain.Account, id int64) error
}

type accountService struct {
	store   *store.Store
	session *session.Manager
}

// NewAccountService создаёт новый экземпляр сервиса
func NewAccountService(st *store.Store, sess *session.Manager) AccountService {
	return &accountService{store: st, session: sess}
}

// Register создаёт неподтверждённую учётную запись роли User и запоминает
// email как ожидающий подтверждения.
func (s *accountService) Register(ctx context.Context, form *dto.RegisterForm) (*domain.Account, error) {
	email := strings.TrimSpace(form.Email)

	if _, err := s.store.FindAccountByEmail(email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	acc := domain.Account{
		ID:        s.store.NewID(),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     email,
		Password:  form.Password,
		Role:      domain.RoleUser,
		Verified:  false,
	}

	if err := s.store.AddAccount(ctx, acc); err != nil {
		return nil, err
	}
	if err := s.session.SetPendingVerification(ctx, email); err != nil {
		return nil, err
	}

	return &acc, nil
}

// Verify подтверждает email, ожидающий подтверждения, и снимает отметку
func (s *accountService) Verify(ctx context.Context) (*domain.Account, error) {
	email, ok, err := s.session.PendingVerification(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNothingToVerify
	}

	acc, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}

	acc.Verified = true
	if err := s.store.UpdateAccount(ctx, *acc); err != nil {
		return nil, err
	}
	if err := s.session.ClearPendingVerification(ctx); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *accountService) List() []domain.Account {
	return s.store.Accounts()
}

func (s *accountService) Get(id int64) (*domain.Account, error) {
	return s.store.FindAccountByID(id)
}

// Create добавляет учётную запись с явно выбранными ролью и признаком
// подтверждения (административный путь).
func (s *accountService) Create(ctx context.Context, form *dto.AccountForm) (*domain.Account, error) {
	if len(form.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	email := strings.TrimSpace(form.Email)
	if _, err := s.store.FindAccountByEmail(email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	acc := domain.Account{
		ID:        s.store.NewID(),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     email,
		Password:  form.Password,
		Role:      domain.Role(form.Role),
		Verified:  form.Verified,
	}

	if err := s.store.AddAccount(ctx, acc); err != nil {
		return nil, err
	}

	return &acc, nil
}

// Update изменяет учётную запись. Email неизменяем и из формы игнорируется;
// пустой пароль сохраняет прежний, непустой короче минимума отклоняется.
func (s *accountService) Update(ctx context.Context, id int64, form *dto.AccountForm) (*domain.Account, error) {
	acc, err := s.store.FindAccountByID(id)
	if err != nil {
		return nil, err
	}

	if form.Password != "" && len(form.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	acc.FirstName = strings.TrimSpace(form.FirstName)
	acc.LastName = strings.TrimSpace(form.LastName)
	acc.Role = domain.Role(form.Role)
	acc.Verified = form.Verified
	if form.Password != "" {
		acc.Password = form.Password
	}

	if err := s.store.UpdateAccount(ctx, *acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// ResetPassword устанавливает новый пароль учётной записи
func (s *accountService) ResetPassword(ctx context.Context, id int64, password string) error {
	if len(password) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	acc, err := s.store.FindAccountByID(id)
	if err != nil {
		return err
	}

	acc.Password = password
	return s.store.UpdateAccount(ctx, *acc)
}

// Delete удаляет учётную запись. Удаление учётной записи текущего сеанса
// запрещено и отклоняется до любых подтверждений.
func (s *accountService) Delete(ctx context.Context, principal *domain.Account, id int64) error {
	if principal != nil && principal.ID == id {
		return domain.ErrSelfDelete
	}
	return s.store.DeleteAccount(ctx, id)
}
