package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
)

var projectColumns = []string{
	"id", "project_id", "name", "road_id", "vendor_id", "type", "ward_id", "ward_name", "budget",
	"start_date", "end_date", "status", "progress", "description", "created_at", "created_by",
}

func projectValues(project *domain.Project) map[string]interface{} {
	return map[string]interface{}{
		"project_id":  project.Code,
		"name":        project.Name,
		"road_id":     project.RoadID,
		"vendor_id":   project.VendorID,
		"type":        project.Type,
		"ward_id":     project.WardID,
		"ward_name":   project.WardName,
		"budget":      project.Budget,
		"start_date":  project.StartDate,
		"end_date":    project.EndDate,
		"status":      project.Status,
		"progress":    project.Progress,
		"description": project.Description,
		"created_by":  project.CreatedBy,
	}
}

func (s *store) ListProjects(ctx context.Context, opts ListProjectsOpts) ([]*domain.Project, error) {
	query := builder().Select(projectColumns...).
		From(tableProjects).
		OrderBy("id")

	if opts.RoadID != nil {
		query = query.Where(squirrel.Eq{"road_id": *opts.RoadID})
	}
	if opts.VendorID != nil {
		query = query.Where(squirrel.Eq{"vendor_id": *opts.VendorID})
	}
	if opts.WardID != nil {
		query = query.Where(squirrel.Eq{"ward_id": *opts.WardID})
	}

	projects := make([]*domain.Project, 0)
	if err := s.pool.Selectx(ctx, &projects, query); err != nil {
		logger.Errorf(ctx, "ListProjects: %s", err.Error())
		return nil, wrapErr(err)
	}
	return projects, nil
}

func (s *store) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	query := builder().Select(projectColumns...).
		From(tableProjects).
		Where(squirrel.Eq{"id": id})

	var project domain.Project
	if err := s.pool.Getx(ctx, &project, query); err != nil {
		return nil, fmt.Errorf("project %d: %w", id, wrapErr(err))
	}
	return &project, nil
}

func (s *store) InsertProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	values := projectValues(project)
	values["created_at"] = project.CreatedAt

	query := builder().Insert(tableProjects).
		SetMap(values).
		Suffix(returning(projectColumns))

	var inserted domain.Project
	if err := s.pool.Getx(ctx, &inserted, query); err != nil {
		logger.Errorf(ctx, "InsertProject: %s", err.Error())
		return nil, projectWriteErr(err)
	}
	return &inserted, nil
}

func (s *store) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query := builder().Update(tableProjects).
		SetMap(projectValues(project)).
		Where(squirrel.Eq{"id": project.ID}).
		Suffix(returning(projectColumns))

	var updated domain.Project
	if err := s.pool.Getx(ctx, &updated, query); err != nil {
		return nil, fmt.Errorf("project %d: %w", project.ID, projectWriteErr(err))
	}
	return &updated, nil
}

func (s *store) DeleteProject(ctx context.Context, id int64) error {
	query := builder().Delete(tableProjects).
		Where(squirrel.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %d: %w", id, constants.ErrDBNotFound)
	}
	return nil
}

// projectWriteErr reports a foreign key failure on write as a dangling reference rather than a blocked delete.
func projectWriteErr(err error) error {
	err = wrapErr(err)
	if errors.Is(err, constants.ErrReferenced) {
		return constants.ErrInvalidReference
	}
	return err
}
