package handler

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/ui"
)

// Navigator - программный переход на страницу по токену
type Navigator func(token string)

// notifyValidationError показывает человекочитаемое сообщение по результату
// валидации формы. Ошибка минимальной длины пароля выделяется отдельно.
func notifyValidationError(n ui.Notifier, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Password" && fe.Tag() == "min" {
				n.Notify("Password must be at least 6 characters", ui.SeverityError)
				return
			}
		}
	}
	n.Notify("Please fill in all fields", ui.SeverityError)
}

// notifyServiceError сопоставляет бизнес-ошибки сервисов с уведомлениями
func notifyServiceError(n ui.Notifier, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		n.Notify("Email already registered", ui.SeverityError)
	case errors.Is(err, domain.ErrPasswordTooShort):
		n.Notify("Password must be at least 6 characters", ui.SeverityError)
	case errors.Is(err, domain.ErrNoAccountForEmail):
		n.Notify("No account with that email exists", ui.SeverityError)
	case errors.Is(err, domain.ErrInvalidCredentials):
		n.Notify("Invalid email or password.", ui.SeverityError)
	case errors.Is(err, domain.ErrEmailNotVerified):
		n.Notify("Please verify your email first.", ui.SeverityWarning)
	case errors.Is(err, domain.ErrNothingToVerify):
		n.Notify("No email to verify", ui.SeverityError)
	case errors.Is(err, domain.ErrSelfDelete):
		n.Notify("Cannot delete your own account", ui.SeverityError)
	case errors.Is(err, domain.ErrEmptyItems):
		n.Notify("Please add at least one item", ui.SeverityError)
	case errors.Is(err, domain.ErrAccessDenied):
		n.Notify("Access denied. Admins only.", ui.SeverityError)
	case errors.Is(err, domain.ErrNotAuthenticated):
		n.Notify("Please login first", ui.SeverityError)
	case errors.Is(err, domain.ErrAccountNotFound):
		n.Notify("Account not found", ui.SeverityError)
	case errors.Is(err, domain.ErrDepartmentNotFound):
		n.Notify("Department not found", ui.SeverityError)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		n.Notify("Employee not found", ui.SeverityError)
	case errors.Is(err, domain.ErrRequestNotFound):
		n.Notify("Request not found", ui.SeverityError)
	default:
		logger.Error("internal error", slog.Any("error", err))
		n.Notify("Something went wrong", ui.SeverityError)
	}
}
