package registry

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (s *Service) ListWards(ctx context.Context) ([]*domain.Ward, error) {
	return s.store.ListWards(ctx)
}

func (s *Service) GetWard(ctx context.Context, id int64) (*domain.Ward, error) {
	return s.store.GetWard(ctx, id)
}

func (s *Service) CreateWard(ctx context.Context, req dto.CreateWardRequest) (*domain.Ward, error) {
	ward := req.ToDomain()
	created, err := s.store.InsertWard(ctx, &ward)
	if err != nil {
		return nil, fmt.Errorf("insert ward: %w", err)
	}
	return created, nil
}
