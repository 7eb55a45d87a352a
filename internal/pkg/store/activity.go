package store

import (
	"context"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
)

var activityColumns = []string{"id", "type", "description", "entity_id", "entity_type", "user_id", "user_name", "recorded_at"}

func (s *store) InsertActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	query := builder().Insert(tableActivities).
		Columns("type", "description", "entity_id", "entity_type", "user_id", "user_name", "recorded_at").
		Values(activity.Type, activity.Description, activity.EntityID, activity.EntityType,
			activity.UserID, activity.UserName, activity.Timestamp).
		Suffix(returning(activityColumns))

	var inserted domain.Activity
	if err := s.pool.Getx(ctx, &inserted, query); err != nil {
		logger.Errorf(ctx, "InsertActivity: %s", err.Error())
		return nil, wrapErr(err)
	}
	return &inserted, nil
}

func (s *store) ListActivities(ctx context.Context, limit int) ([]*domain.Activity, error) {
	query := builder().Select(activityColumns...).
		From(tableActivities).
		OrderBy("recorded_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	activities := make([]*domain.Activity, 0)
	if err := s.pool.Selectx(ctx, &activities, query); err != nil {
		return nil, wrapErr(err)
	}
	return activities, nil
}
