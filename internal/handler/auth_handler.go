package handler

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/router"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/ui"
)

// AuthHandler управляет регистрацией, подтверждением email, входом и выходом
type AuthHandler struct {
	accounts  service.AccountService
	session   *session.Manager
	validator *validator.Validate
	notifier  ui.Notifier
	navigate  Navigator
	logger    *slog.Logger
}

func NewAuthHandler(
	accounts service.AccountService,
	sess *session.Manager,
	notifier ui.Notifier,
	navigate Navigator,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		session:   sess,
		validator: validator.New(),
		notifier:  notifier,
		navigate:  navigate,
		logger:    logger,
	}
}

func (h *AuthHandler) Register(ctx context.Context, form *dto.RegisterForm) {
	if err := h.validator.Struct(form); err != nil {
		notifyValidationError(h.notifier, err)
		return
	}

	if _, err := h.accounts.Register(ctx, form); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Account created! Please verify your email.", ui.SeveritySuccess)
	h.navigate("#/" + router.PageVerifyEmail)
}

func (h *AuthHandler) Verify(ctx context.Context) {
	if _, err := h.accounts.Verify(ctx); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Email verified! You can now login.", ui.SeveritySuccess)
	h.navigate("#/" + router.PageLogin)
}

func (h *AuthHandler) Login(ctx context.Context, form *dto.LoginForm) {
	if err := h.validator.Struct(form); err != nil {
		notifyValidationError(h.notifier, err)
		return
	}

	if _, err := h.session.Authenticate(ctx, form.Email, form.Password); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Login successful!", ui.SeveritySuccess)
	h.navigate("#/" + router.PageProfile)
}

func (h *AuthHandler) Logout(ctx context.Context) {
	if err := h.session.Clear(ctx); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Logged out successfully", ui.SeveritySuccess)
	h.navigate(router.DefaultToken)
}
