package store

import (
	"context"

	"github.com/staff-portal-core/internal/domain"
)

// Employees возвращает сотрудников в порядке добавления
func (s *Store) Employees() []domain.Employee {
	return append([]domain.Employee{}, s.data.Employees...)
}

// FindEmployeeByID возвращает сотрудника по внутреннему идентификатору
func (s *Store) FindEmployeeByID(id int64) (*domain.Employee, error) {
	for i := range s.data.Employees {
		if s.data.Employees[i].ID == id {
			emp := s.data.Employees[i]
			return &emp, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

// AddEmployee добавляет сотрудника и сохраняет граф
func (s *Store) AddEmployee(ctx context.Context, emp domain.Employee) error {
	s.data.Employees = append(s.data.Employees, emp)
	return s.Save(ctx)
}

// UpdateEmployee замещает сотрудника с тем же id и сохраняет граф
func (s *Store) UpdateEmployee(ctx context.Context, emp domain.Employee) error {
	for i := range s.data.Employees {
		if s.data.Employees[i].ID == emp.ID {
			s.data.Employees[i] = emp
			return s.Save(ctx)
		}
	}
	return domain.ErrEmployeeNotFound
}

// DeleteEmployee удаляет сотрудника по id и сохраняет граф
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	for i := range s.data.Employees {
		if s.data.Employees[i].ID == id {
			s.data.Employees = append(s.data.Employees[:i], s.data.Employees[i+1:]...)
			return s.Save(ctx)
		}
	}
	return domain.ErrEmployeeNotFound
}
