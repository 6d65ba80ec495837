package store

import (
	"context"

	"github.com/staff-portal-core/internal/domain"
)

// Departments возвращает подразделения в порядке добавления
func (s *Store) Departments() []domain.Department {
	return append([]domain.Department{}, s.data.Departments...)
}

// FindDepartmentByID возвращает подразделение по идентификатору
func (s *Store) FindDepartmentByID(id int64) (*domain.Department, error) {
	for i := range s.data.Departments {
		if s.data.Departments[i].ID == id {
			dept := s.data.Departments[i]
			return &dept, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

// AddDepartment добавляет подразделение и сохраняет граф
func (s *Store) AddDepartment(ctx context.Context, dept domain.Department) error {
	s.data.Departments = append(s.data.Departments, dept)
	return s.Save(ctx)
}

// UpdateDepartment замещает подразделение с тем же id и сохраняет граф
func (s *Store) UpdateDepartment(ctx context.Context, dept domain.Department) error {
	for i := range s.data.Departments {
		if s.data.Departments[i].ID == dept.ID {
			s.data.Departments[i] = dept
			return s.Save(ctx)
		}
	}
	return domain.ErrDepartmentNotFound
}

// DeleteDepartment удаляет подразделение по id и сохраняет граф.
// Сотрудники, ссылающиеся на удалённое подразделение, не затрагиваются.
func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	for i := range s.data.Departments {
		if s.data.Departments[i].ID == id {
			s.data.Departments = append(s.data.Departments[:i], s.data.Departments[i+1:]...)
			return s.Save(ctx)
		}
	}
	return domain.ErrDepartmentNotFound
}
