package service

import (
	"context"
	"errors"

	"admin-console/internal/domain"
	"admin-console/internal/repository"
)

// DirectoryService pagina cuentas y feedback para las vistas de la consola.
type DirectoryService struct {
	accounts repository.AccountRepository
	feedback repository.FeedbackRepository
}

func NewDirectoryService(accounts repository.AccountRepository, feedback repository.FeedbackRepository) *DirectoryService {
	return &DirectoryService{accounts: accounts, feedback: feedback}
}

func (s *DirectoryService) ListAccounts(ctx context.Context, p domain.Pagination) (domain.Page[domain.Account], error) {
	if s.accounts == nil {
		return domain.Page[domain.Account]{}, errors.New("account repository not configured")
	}
	p = p.Normalize()
	total, err := s.accounts.Count(ctx)
	if err != nil {
		return domain.Page[domain.Account]{}, err
	}
	items, err := s.accounts.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		return domain.Page[domain.Account]{}, err
	}
	if items == nil {
		items = []domain.Account{}
	}
	p.Total = total
	return domain.Page[domain.Account]{Items: items, Pagination: p}, nil
}

func (s *DirectoryService) ListFeedback(ctx context.Context, p domain.Pagination) (domain.Page[domain.Feedback], error) {
	if s.feedback == nil {
		return domain.Page[domain.Feedback]{}, errors.New("feedback repository not configured")
	}
	p = p.Normalize()
	total, err := s.feedback.Count(ctx)
	if err != nil {
		return domain.Page[domain.Feedback]{}, err
	}
	items, err := s.feedback.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		return domain.Page[domain.Feedback]{}, err
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	p.Total = total
	return domain.Page[domain.Feedback]{Items: items, Pagination: p}, nil
}
