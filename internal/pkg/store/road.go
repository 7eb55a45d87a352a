package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
)

var roadColumns = []string{
	"id", "road_id", "name", "description", "ward_id", "ward_name", "length", "width",
	"start_point", "end_point", "construction_year", "last_maintenance", "status", "coordinates", "created_at",
}

func roadValues(road *domain.Road) map[string]interface{} {
	return map[string]interface{}{
		"road_id":           road.Code,
		"name":              road.Name,
		"description":       road.Description,
		"ward_id":           road.WardID,
		"ward_name":         road.WardName,
		"length":            road.Length,
		"width":             road.Width,
		"start_point":       road.StartPoint,
		"end_point":         road.EndPoint,
		"construction_year": road.ConstructionYear,
		"last_maintenance":  road.LastMaintenance,
		"status":            road.Status,
		"coordinates":       road.Coordinates,
	}
}

func (s *store) ListRoads(ctx context.Context) ([]*domain.Road, error) {
	query := builder().Select(roadColumns...).
		From(tableRoads).
		OrderBy("id")

	roads := make([]*domain.Road, 0)
	if err := s.pool.Selectx(ctx, &roads, query); err != nil {
		logger.Errorf(ctx, "ListRoads: %s", err.Error())
		return nil, wrapErr(err)
	}
	return roads, nil
}

func (s *store) GetRoad(ctx context.Context, id int64) (*domain.Road, error) {
	query := builder().Select(roadColumns...).
		From(tableRoads).
		Where(squirrel.Eq{"id": id})

	var road domain.Road
	if err := s.pool.Getx(ctx, &road, query); err != nil {
		return nil, fmt.Errorf("road %d: %w", id, wrapErr(err))
	}
	return &road, nil
}

func (s *store) InsertRoad(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	values := roadValues(road)
	values["created_at"] = road.CreatedAt

	query := builder().Insert(tableRoads).
		SetMap(values).
		Suffix(returning(roadColumns))

	var inserted domain.Road
	if err := s.pool.Getx(ctx, &inserted, query); err != nil {
		logger.Errorf(ctx, "InsertRoad: %s", err.Error())
		return nil, wrapErr(err)
	}
	return &inserted, nil
}

func (s *store) UpdateRoad(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	query := builder().Update(tableRoads).
		SetMap(roadValues(road)).
		Where(squirrel.Eq{"id": road.ID}).
		Suffix(returning(roadColumns))

	var updated domain.Road
	if err := s.pool.Getx(ctx, &updated, query); err != nil {
		return nil, fmt.Errorf("road %d: %w", road.ID, wrapErr(err))
	}
	return &updated, nil
}

func (s *store) DeleteRoad(ctx context.Context, id int64) error {
	if err := s.deleteUnreferenced(ctx, tableRoads, "road_id", id); err != nil {
		return fmt.Errorf("road %d: %w", id, err)
	}
	return nil
}
