package service

import (
	"context"
	"errors"
	"strings"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/store"
)

// EmployeeView - сотрудник вместе с именем подразделения для отображения.
// Для висячей ссылки на подразделение подставляется "N/A".
type EmployeeView struct {
	domain.Employee
	DepartmentName string
}

// EmployeeService определяет бизнес-логику сотрудников
type EmployeeService interface {
	List() []EmployeeView
	Get(id int64) (*domain.Employee, error)
	Create(ctx context.Context, form *dto.EmployeeForm) (*domain.Employee, error)
	Update(ctx context.Context, id int64, form *dto.EmployeeForm) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	store *store.Store
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(st *store.Store) EmployeeService {
	return &employeeService{store: st}
}

func (s *employeeService) List() []EmployeeView {
	employees := s.store.Employees()
	views := make([]EmployeeView, 0, len(employees))
	for _, emp := range employees {
		name := "N/A"
		if dept, err := s.store.FindDepartmentByID(emp.DeptID); err == nil {
			name = dept.Name
		}
		views = append(views, EmployeeView{Employee: emp, DepartmentName: name})
	}
	return views
}

func (s *employeeService) Get(id int64) (*domain.Employee, error) {
	return s.store.FindEmployeeByID(id)
}

// Create добавляет сотрудника. Email обязан разрешаться в существующую
// учётную запись; её id копируется в UserID.
func (s *employeeService) Create(ctx context.Context, form *dto.EmployeeForm) (*domain.Employee, error) {
	acc, err := s.resolveAccount(form.Email)
	if err != nil {
		return nil, err
	}

	emp := domain.Employee{
		ID:         s.store.NewID(),
		EmployeeID: strings.TrimSpace(form.EmployeeID),
		Email:      acc.Email,
		UserID:     acc.ID,
		Position:   strings.TrimSpace(form.Position),
		DeptID:     form.DeptID,
		HireDate:   form.HireDate,
	}

	if err := s.store.AddEmployee(ctx, emp); err != nil {
		return nil, err
	}

	return &emp, nil
}

// Update изменяет сотрудника; email перепроверяется так же, как при создании
func (s *employeeService) Update(ctx context.Context, id int64, form *dto.EmployeeForm) (*domain.Employee, error) {
	emp, err := s.store.FindEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	acc, err := s.resolveAccount(form.Email)
	if err != nil {
		return nil, err
	}

	emp.EmployeeID = strings.TrimSpace(form.EmployeeID)
	emp.Email = acc.Email
	emp.UserID = acc.ID
	emp.Position = strings.TrimSpace(form.Position)
	emp.DeptID = form.DeptID
	emp.HireDate = form.HireDate

	if err := s.store.UpdateEmployee(ctx, *emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteEmployee(ctx, id)
}

func (s *employeeService) resolveAccount(email string) (*domain.Account, error) {
	acc, err := s.store.FindAccountByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrNoAccountForEmail
		}
		return nil, err
	}
	return acc, nil
}
