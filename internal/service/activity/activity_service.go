package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
	"github.com/ougirez/roadtrack/internal/pkg/metrics"
	"github.com/ougirez/roadtrack/internal/pkg/store"
)

type Service struct {
	store   store.ActivityStore
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewActivityService(store store.ActivityStore, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{store: store, metrics: m, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends an entry to the activity log, stamped with the current time.
func (s *Service) Record(ctx context.Context, req dto.CreateActivityRequest) (*domain.Activity, error) {
	if req.Type == "" || req.Description == "" {
		return nil, fmt.Errorf("activity type and description are required: %w", constants.ErrBadRequest)
	}

	activity := req.ToDomain()
	activity.Timestamp = s.now().UTC()

	stored, err := s.store.InsertActivity(ctx, &activity)
	if err != nil {
		logger.Errorf(ctx, "InsertActivity: %s", err.Error())
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	s.metrics.ActivityRecorded(stored.Type)
	logger.Debugf(ctx, "activity %d recorded: %s", stored.ID, stored.Description)
	return stored, nil
}

// List returns the newest entries first. limit <= 0 means no limit.
func (s *Service) List(ctx context.Context, limit int) ([]*domain.Activity, error) {
	activities, err := s.store.ListActivities(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
