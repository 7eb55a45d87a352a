package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/store"
)

// ListProjects accepts one of roadId, vendorId or wardId. When several are given the first in that order wins.
func (c *Controller) ListProjects(ctx echo.Context) error {
	var opts store.ListProjectsOpts

	roadID, err := queryInt64(ctx, "roadId")
	if err != nil {
		return err
	}
	vendorID, err := queryInt64(ctx, "vendorId")
	if err != nil {
		return err
	}
	wardID, err := queryInt64(ctx, "wardId")
	if err != nil {
		return err
	}

	switch {
	case roadID != nil:
		opts.RoadID = roadID
	case vendorID != nil:
		opts.VendorID = vendorID
	case wardID != nil:
		opts.WardID = wardID
	}

	projects, err := c.registry.ListProjects(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, projects)
}

func (c *Controller) GetProject(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	project, err := c.registry.GetProject(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, project)
}

func (c *Controller) CreateProject(ctx echo.Context) error {
	var req dto.CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	project, err := c.registry.CreateProject(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, project)
}

func (c *Controller) UpdateProject(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var patch dto.ProjectPatch
	if err = ctx.Bind(&patch); err != nil {
		return err
	}

	project, err := c.registry.UpdateProject(ctx.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, project)
}

func (c *Controller) DeleteProject(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err = c.registry.DeleteProject(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
