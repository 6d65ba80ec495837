package handler

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/ui"
)

// AccountHandler управляет административным учётом учётных записей
type AccountHandler struct {
	accounts  service.AccountService
	session   *session.Manager
	validator *validator.Validate
	notifier  ui.Notifier
	confirmer ui.Confirmer
	prompter  ui.Prompter
	refresh   func()
	logger    *slog.Logger
}

func NewAccountHandler(
	accounts service.AccountService,
	sess *session.Manager,
	notifier ui.Notifier,
	confirmer ui.Confirmer,
	prompter ui.Prompter,
	refresh func(),
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		session:   sess,
		validator: validator.New(),
		notifier:  notifier,
		confirmer: confirmer,
		prompter:  prompter,
		refresh:   refresh,
		logger:    logger,
	}
}

func (h *AccountHandler) List() []domain.Account {
	return h.accounts.List()
}

// BeginEdit возвращает форму, заполненную текущими значениями учётной
// записи. Пароль отдаётся пустым: пустое поле на сохранении означает
// "оставить прежний".
func (h *AccountHandler) BeginEdit(id int64) (*dto.AccountForm, error) {
	acc, err := h.accounts.Get(id)
	if err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return nil, err
	}
	return &dto.AccountForm{
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Email:     acc.Email,
		Role:      string(acc.Role),
		Verified:  acc.Verified,
	}, nil
}

// Save сохраняет форму: id == nil - создание, иначе редактирование
func (h *AccountHandler) Save(ctx context.Context, id *int64, form *dto.AccountForm) {
	if err := h.validator.Struct(form); err != nil {
		notifyValidationError(h.notifier, err)
		return
	}
	if id == nil && form.Email == "" {
		h.notifier.Notify("Please fill in all fields", ui.SeverityError)
		return
	}

	var err error
	if id == nil {
		_, err = h.accounts.Create(ctx, form)
	} else {
		_, err = h.accounts.Update(ctx, *id, form)
	}
	if err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	if id == nil {
		h.notifier.Notify("Account created", ui.SeveritySuccess)
	} else {
		h.notifier.Notify("Account updated", ui.SeveritySuccess)
	}
	h.refresh()
}

// ResetPassword запрашивает новый пароль одной строкой; отмена молча
// прерывает операцию.
func (h *AccountHandler) ResetPassword(ctx context.Context, id int64) {
	password, ok := h.prompter.PromptText("Enter new password (min 6 characters)")
	if !ok {
		return
	}

	if err := h.accounts.ResetPassword(ctx, id, password); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Password reset successfully", ui.SeveritySuccess)
}

// Delete удаляет учётную запись. Защита от самоудаления срабатывает до
// показа подтверждения.
func (h *AccountHandler) Delete(ctx context.Context, id int64) {
	if principal := h.session.Current(); principal != nil && principal.ID == id {
		notifyServiceError(h.notifier, h.logger, domain.ErrSelfDelete)
		return
	}

	if !h.confirmer.Confirm("Are you sure you want to delete this account?") {
		return
	}

	if err := h.accounts.Delete(ctx, h.session.Current(), id); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Account deleted", ui.SeveritySuccess)
	h.refresh()
}
