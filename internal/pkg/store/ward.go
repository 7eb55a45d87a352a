package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/roadtrack/internal/domain"
)

var wardColumns = []string{"id", "name", "number", "area", "population", "description"}

func (s *store) ListWards(ctx context.Context) ([]*domain.Ward, error) {
	query := builder().Select(wardColumns...).
		From(tableWards).
		OrderBy("id")

	wards := make([]*domain.Ward, 0)
	if err := s.pool.Selectx(ctx, &wards, query); err != nil {
		return nil, wrapErr(err)
	}
	return wards, nil
}

func (s *store) GetWard(ctx context.Context, id int64) (*domain.Ward, error) {
	query := builder().Select(wardColumns...).
		From(tableWards).
		Where(squirrel.Eq{"id": id})

	var ward domain.Ward
	if err := s.pool.Getx(ctx, &ward, query); err != nil {
		return nil, fmt.Errorf("ward %d: %w", id, wrapErr(err))
	}
	return &ward, nil
}

func (s *store) InsertWard(ctx context.Context, ward *domain.Ward) (*domain.Ward, error) {
	query := builder().Insert(tableWards).
		Columns("name", "number", "area", "population", "description").
		Values(ward.Name, ward.Number, ward.Area, ward.Population, ward.Description).
		Suffix(returning(wardColumns))

	var inserted domain.Ward
	if err := s.pool.Getx(ctx, &inserted, query); err != nil {
		return nil, wrapErr(err)
	}
	return &inserted, nil
}
