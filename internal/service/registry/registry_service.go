package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
	"github.com/ougirez/roadtrack/internal/pkg/store"
	"github.com/ougirez/roadtrack/internal/service/activity"
)

// Service owns create/update/delete of registry entities and the activity entries they produce.
type Service struct {
	store        store.Store
	activity     *activity.Service
	defaultActor domain.Actor
	now          func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewRegistryService(store store.Store, activity *activity.Service, defaultActor domain.Actor, opts ...Option) *Service {
	s := &Service{
		store:        store,
		activity:     activity,
		defaultActor: defaultActor,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) actor(ctx context.Context) domain.Actor {
	if a, ok := domain.ActorFromContext(ctx); ok && a.ID != "" {
		if a.Name == "" {
			a.Name = a.ID
		}
		return a
	}
	return s.defaultActor
}

// record writes an activity entry. The mutation it describes has already happened,
// so a failure here is logged and not returned.
func (s *Service) record(ctx context.Context, actor domain.Actor, activityType, description, entityType string, entityID int64) {
	_, err := s.activity.Record(ctx, dto.CreateActivityRequest{
		Type:        activityType,
		Description: description,
		EntityID:    &entityID,
		EntityType:  &entityType,
		UserID:      &actor.ID,
		UserName:    &actor.Name,
	})
	if err != nil {
		logger.Errorf(ctx, "record %s activity for %s %d: %s", activityType, entityType, entityID, err.Error())
	}
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// asInvalidReference turns a missing referenced record into a 400 for the caller.
func asInvalidReference(err error, kind string, id int64) error {
	if errors.Is(err, constants.ErrDBNotFound) {
		return fmt.Errorf("%s %d does not exist: %w", kind, id, constants.ErrInvalidReference)
	}
	return err
}
