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

// RequestHandler управляет заявками сотрудников
type RequestHandler struct {
	requests  service.RequestService
	session   *session.Manager
	validator *validator.Validate
	notifier  ui.Notifier
	refresh   func()
	logger    *slog.Logger
}

func NewRequestHandler(
	requests service.RequestService,
	sess *session.Manager,
	notifier ui.Notifier,
	refresh func(),
	logger *slog.Logger,
) *RequestHandler {
	return &RequestHandler{
		requests:  requests,
		session:   sess,
		validator: validator.New(),
		notifier:  notifier,
		refresh:   refresh,
		logger:    logger,
	}
}

// List возвращает заявки, видимые текущему сеансу
func (h *RequestHandler) List() []domain.Request {
	visible, err := h.requests.ListVisible(h.session.Current())
	if err != nil {
		return nil
	}
	return visible
}

func (h *RequestHandler) Submit(ctx context.Context, form *dto.RequestForm) {
	if err := h.validator.Struct(form); err != nil {
		h.notifier.Notify("Please add at least one item", ui.SeverityError)
		return
	}

	if _, err := h.requests.Submit(ctx, h.session.Current(), form); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Request submitted", ui.SeveritySuccess)
	h.refresh()
}

func (h *RequestHandler) Approve(ctx context.Context, id int64) {
	if err := h.requests.Approve(ctx, h.session.Current(), id); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Request approved", ui.SeveritySuccess)
	h.refresh()
}

func (h *RequestHandler) Reject(ctx context.Context, id int64) {
	if err := h.requests.Reject(ctx, h.session.Current(), id); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Request rejected", ui.SeveritySuccess)
	h.refresh()
}
