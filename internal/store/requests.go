package store

import (
	"context"

	"github.com/staff-portal-core/internal/domain"
)

// Requests возвращает заявки в порядке добавления
func (s *Store) Requests() []domain.Request {
	requests := append([]domain.Request{}, s.data.Requests...)
	for i := range requests {
		requests[i].Items = append([]domain.RequestItem{}, requests[i].Items...)
	}
	return requests
}

// FindRequestByID возвращает заявку по идентификатору
func (s *Store) FindRequestByID(id int64) (*domain.Request, error) {
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id {
			req := s.data.Requests[i]
			req.Items = append([]domain.RequestItem{}, req.Items...)
			return &req, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

// AddRequest добавляет заявку и сохраняет граф
func (s *Store) AddRequest(ctx context.Context, req domain.Request) error {
	s.data.Requests = append(s.data.Requests, req)
	return s.Save(ctx)
}

// SetRequestStatus выставляет статус заявки и сохраняет граф
func (s *Store) SetRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id {
			s.data.Requests[i].Status = status
			return s.Save(ctx)
		}
	}
	return domain.ErrRequestNotFound
}
