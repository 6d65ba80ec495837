package handler

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/ui"
)

// EmployeeHandler управляет сотрудниками
type EmployeeHandler struct {
	employees service.EmployeeService
	validator *validator.Validate
	notifier  ui.Notifier
	confirmer ui.Confirmer
	refresh   func()
	logger    *slog.Logger
}

func NewEmployeeHandler(
	employees service.EmployeeService,
	notifier ui.Notifier,
	confirmer ui.Confirmer,
	refresh func(),
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		employees: employees,
		validator: validator.New(),
		notifier:  notifier,
		confirmer: confirmer,
		refresh:   refresh,
		logger:    logger,
	}
}

func (h *EmployeeHandler) List() []service.EmployeeView {
	return h.employees.List()
}

// BeginEdit возвращает форму, заполненную текущими значениями сотрудника
func (h *EmployeeHandler) BeginEdit(id int64) (*dto.EmployeeForm, error) {
	emp, err := h.employees.Get(id)
	if err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return nil, err
	}
	return &dto.EmployeeForm{
		EmployeeID: emp.EmployeeID,
		Email:      emp.Email,
		Position:   emp.Position,
		DeptID:     emp.DeptID,
		HireDate:   emp.HireDate,
	}, nil
}

// Save сохраняет форму: id == nil - создание, иначе редактирование
func (h *EmployeeHandler) Save(ctx context.Context, id *int64, form *dto.EmployeeForm) {
	if err := h.validator.Struct(form); err != nil {
		notifyValidationError(h.notifier, err)
		return
	}

	var err error
	if id == nil {
		_, err = h.employees.Create(ctx, form)
	} else {
		_, err = h.employees.Update(ctx, *id, form)
	}
	if err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	if id == nil {
		h.notifier.Notify("Employee added", ui.SeveritySuccess)
	} else {
		h.notifier.Notify("Employee updated", ui.SeveritySuccess)
	}
	h.refresh()
}

func (h *EmployeeHandler) Delete(ctx context.Context, id int64) {
	if !h.confirmer.Confirm("Delete this employee?") {
		return
	}

	if err := h.employees.Delete(ctx, id); err != nil {
		notifyServiceError(h.notifier, h.logger, err)
		return
	}

	h.notifier.Notify("Employee deleted", ui.SeveritySuccess)
	h.refresh()
}
