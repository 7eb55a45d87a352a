package registry

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (s *Service) ListRoads(ctx context.Context) ([]*domain.Road, error) {
	return s.store.ListRoads(ctx)
}

func (s *Service) GetRoad(ctx context.Context, id int64) (*domain.Road, error) {
	return s.store.GetRoad(ctx, id)
}

func (s *Service) CreateRoad(ctx context.Context, req dto.CreateRoadRequest) (*domain.Road, error) {
	road := req.ToDomain()
	road.CreatedAt = s.timestamp()

	created, err := s.store.InsertRoad(ctx, &road)
	if err != nil {
		return nil, fmt.Errorf("insert road: %w", err)
	}

	s.record(ctx, s.actor(ctx), domain.ActivityRoadAdded,
		fmt.Sprintf("Road %s (%s) added to registry", created.Code, created.Name),
		domain.EntityRoad, created.ID)
	return created, nil
}

// UpdateRoad merges patch into the stored road. A road_updated entry is written even when nothing changed.
func (s *Service) UpdateRoad(ctx context.Context, id int64, patch dto.RoadPatch) (*domain.Road, error) {
	current, err := s.store.GetRoad(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current

	updated := current
	if changes := patch.Apply(current); !changes.Empty() {
		updated, err = s.store.UpdateRoad(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("update road: %w", err)
		}
	}

	s.record(ctx, s.actor(ctx), domain.ActivityRoadUpdated,
		fmt.Sprintf("Road %s (%s) updated", before.Code, before.Name),
		domain.EntityRoad, id)
	return updated, nil
}

func (s *Service) DeleteRoad(ctx context.Context, id int64) error {
	road, err := s.store.GetRoad(ctx, id)
	if err != nil {
		return err
	}
	if err = s.store.DeleteRoad(ctx, id); err != nil {
		return err
	}

	s.record(ctx, s.actor(ctx), domain.ActivityRoadDeleted,
		fmt.Sprintf("Road %s (%s) deleted from registry", road.Code, road.Name),
		domain.EntityRoad, id)
	return nil
}
