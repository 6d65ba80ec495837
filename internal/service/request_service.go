package service

import (
	"context"
	"strings"
	"time"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/store"
)

// RequestService определяет бизнес-логику заявок
type RequestService interface {
	ListVisible(principal *domain.Account) ([]domain.Request, error)
	Submit(ctx context.Context, principal *domain.Account, form *dto.RequestForm) (*domain.Request, error)
	Approve(ctx context.Context, principal *domain.Account, id int64) error
	Reject(ctx context.Context, principal *domain.Account, id int64) error
}

type requestService struct {
	store *store.Store
}

// NewRequestService создаёт новый экземпляр сервиса
func NewRequestService(st *store.Store) RequestService {
	return &requestService{store: st}
}

// ListVisible возвращает заявки, видимые текущему сеансу: администратор
// видит все, остальные - только собственные.
func (s *requestService) ListVisible(principal *domain.Account) ([]domain.Request, error) {
	if principal == nil {
		return nil, domain.ErrNotAuthenticated
	}

	all := s.store.Requests()
	if principal.Role == domain.RoleAdmin {
		return all, nil
	}

	visible := make([]domain.Request, 0)
	for _, req := range all {
		if req.EmployeeEmail == principal.Email {
			visible = append(visible, req)
		}
	}
	return visible, nil
}

// Submit создаёт заявку в статусе Pending от имени текущего сеанса
func (s *requestService) Submit(ctx context.Context, principal *domain.Account, form *dto.RequestForm) (*domain.Request, error) {
	if principal == nil {
		return nil, domain.ErrNotAuthenticated
	}

	items := make([]domain.RequestItem, 0, len(form.Items))
	for _, item := range form.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Qty < 1 {
			continue
		}
		items = append(items, domain.RequestItem{Name: name, Qty: item.Qty})
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	req := domain.Request{
		ID:            s.store.NewID(),
		Type:          strings.TrimSpace(form.Type),
		Items:         items,
		Status:        domain.StatusPending,
		Date:          time.Now().Format("2006-01-02"),
		EmployeeEmail: principal.Email,
	}

	if err := s.store.AddRequest(ctx, req); err != nil {
		return nil, err
	}

	return &req, nil
}

// Approve переводит заявку в статус Approved. Переход применяется к любой
// найденной заявке независимо от текущего статуса.
func (s *requestService) Approve(ctx context.Context, principal *domain.Account, id int64) error {
	return s.transition(ctx, principal, id, domain.StatusApproved)
}

// Reject переводит заявку в статус Rejected
func (s *requestService) Reject(ctx context.Context, principal *domain.Account, id int64) error {
	return s.transition(ctx, principal, id, domain.StatusRejected)
}

func (s *requestService) transition(ctx context.Context, principal *domain.Account, id int64, status domain.RequestStatus) error {
	if principal == nil {
		return domain.ErrNotAuthenticated
	}
	if principal.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}
	return s.store.SetRequestStatus(ctx, id, status)
}
