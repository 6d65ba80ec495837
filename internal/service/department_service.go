package service

import (
	"context"
	"strings"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/store"
)

// DepartmentService определяет бизнес-логику подразделений
type DepartmentService interface {
	List() []domain.Department
	Get(id int64) (*domain.Department, error)
	Create(ctx context.Context, form *dto.DepartmentForm) (*domain.Department, error)
	Update(ctx context.Context, id int64, form *dto.DepartmentForm) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	store *store.Store
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(st *store.Store) DepartmentService {
	return &departmentService{store: st}
}

func (s *departmentService) List() []domain.Department {
	return s.store.Departments()
}

func (s *departmentService) Get(id int64) (*domain.Department, error) {
	return s.store.FindDepartmentByID(id)
}

func (s *departmentService) Create(ctx context.Context, form *dto.DepartmentForm) (*domain.Department, error) {
	dept := domain.Department{
		ID:          s.store.NewID(),
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
	}

	if err := s.store.AddDepartment(ctx, dept); err != nil {
		return nil, err
	}

	return &dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, form *dto.DepartmentForm) (*domain.Department, error) {
	dept, err := s.store.FindDepartmentByID(id)
	if err != nil {
		return nil, err
	}

	dept.Name = strings.TrimSpace(form.Name)
	dept.Description = strings.TrimSpace(form.Description)

	if err := s.store.UpdateDepartment(ctx, *dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Delete удаляет подразделение. Ссылки сотрудников на удалённое
// подразделение не каскадируются и остаются висячими; отображение
// подставляет заглушку.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteDepartment(ctx, id)
}
