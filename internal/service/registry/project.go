package registry

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/store"
)

func (s *Service) ListProjects(ctx context.Context, opts store.ListProjectsOpts) ([]*domain.Project, error) {
	return s.store.ListProjects(ctx, opts)
}

func (s *Service) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

// checkRefs verifies the road and vendor a project points at. It returns the road for activity text.
func (s *Service) checkRefs(ctx context.Context, roadID, vendorID int64) (*domain.Road, error) {
	road, err := s.store.GetRoad(ctx, roadID)
	if err != nil {
		return nil, asInvalidReference(err, "road", roadID)
	}
	if _, err = s.store.GetVendor(ctx, vendorID); err != nil {
		return nil, asInvalidReference(err, "vendor", vendorID)
	}
	return road, nil
}

func (s *Service) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	road, err := s.checkRefs(ctx, req.RoadID, req.VendorID)
	if err != nil {
		return nil, err
	}

	project := req.ToDomain()
	project.CreatedAt = s.timestamp()

	created, err := s.store.InsertProject(ctx, &project)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	roadName := "Unknown Road"
	if road != nil && road.Name != "" {
		roadName = road.Name
	}

	actor := s.actor(ctx)
	if created.CreatedBy != nil && *created.CreatedBy != "" {
		actor = domain.Actor{ID: *created.CreatedBy, Name: *created.CreatedBy}
	}

	s.record(ctx, actor, domain.ActivityProjectAdded,
		fmt.Sprintf("New project %s (%s) added for %s", created.Code, created.Name, roadName),
		domain.EntityProject, created.ID)
	return created, nil
}

// UpdateProject merges patch into the stored project. Only status and progress changes are logged.
func (s *Service) UpdateProject(ctx context.Context, id int64, patch dto.ProjectPatch) (*domain.Project, error) {
	current, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current

	changes := patch.Apply(current)
	if changes.Empty() {
		return current, nil
	}
	if changes.Has("roadId") || changes.Has("vendorId") {
		if _, err = s.checkRefs(ctx, current.RoadID, current.VendorID); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateProject(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	actor := s.actor(ctx)
	if changes.Has("status") {
		s.record(ctx, actor, domain.ActivityProjectStatusChanged,
			fmt.Sprintf("Project %s (%s) status changed from %s to %s", before.Code, before.Name, before.Status, updated.Status),
			domain.EntityProject, id)
	}
	if changes.Has("progress") {
		s.record(ctx, actor, domain.ActivityProjectProgressUpdated,
			fmt.Sprintf("Project %s (%s) progress updated to %d%%", before.Code, before.Name, updated.Progress),
			domain.EntityProject, id)
	}
	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err = s.store.DeleteProject(ctx, id); err != nil {
		return err
	}

	s.record(ctx, s.actor(ctx), domain.ActivityProjectDeleted,
		fmt.Sprintf("Project %s (%s) deleted", project.Code, project.Name),
		domain.EntityProject, id)
	return nil
}
