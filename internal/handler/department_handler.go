package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/ui"
)

// DepartmentHandler управляет подразделениями
type DepartmentHandler struct {
	departments service.DepartmentService
	validator   *validator.Validate
	notifier    ui.Notifier
	confirmer   ui.Confirmer
	prompter    ui.Prompter
	refresh     func()
	logger      *slog.Logger
}

func NewDepartmentHandler(
	departments service.DepartmentService,
	notifier ui.Notifier,
	confirmer ui.Confirmer,
	prompter ui.Prompter,
	refresh func(),
	logger *slog.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		departments: departments,
		validator:   validator.New(),
		notifier:    notifier,
		confirmer:   confirmer,
		prompter:    prompter,
		refresh:     refresh,
		logger:      logger,
	}
}

func (h *DepartmentHandler) List() []domain.Department {
	return h.departments.List()
}

// QuickAdd добавляет подразделение через две строки ввода: имя обязательно,
// описание опционально. Отмена или пустое имя молча прерывают операцию.
func (h *DepartmentHandler) QuickAdd(ctx context.Context) {
	name, ok := h.prompter.PromptText("Department name")
	if !ok || strings.TrimSpace(name) == "" {
		return
	}
	description, _ := h.prompter.PromptText("Department description")

	form := dto.DepartmentForm{Name: name, Description: description}
	if _, err := h.departments.Create(ctx, &form); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Department added", ui.SeveritySuccess)
	h.refresh()
}

// Save сохраняет форму: id == nil - создание, иначе редактирование
func (h *DepartmentHandler) Save(ctx context.Context, id *int64, form *dto.DepartmentForm) {
	if err := h.validator.Struct(form); err != nil {
		notifyValidationError(h.notifier, err)
		return
	}

	var err error
	if id == nil {
		_, err = h.departments.Create(ctx, form)
	} else {
		_, err = h.departments.Update(ctx, *id, form)
	}
	if err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	if id == nil {
		h.notifier.Notify("Department added", ui.SeveritySuccess)
	} else {
		h.notifier.Notify("Department updated", ui.SeveritySuccess)
	}
	h.refresh()
}

func (h *DepartmentHandler) Delete(ctx context.Context, id int64) {
	if !h.confirmer.Confirm("Delete this department?") {
		return
	}

	if err := h.departments.Delete(ctx, id); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Department deleted", ui.SeveritySuccess)
	h.refresh()
}
