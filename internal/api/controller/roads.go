package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (c *Controller) ListRoads(ctx echo.Context) error {
	roads, err := c.registry.ListRoads(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, roads)
}

func (c *Controller) GetRoad(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	road, err := c.registry.GetRoad(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, road)
}

func (c *Controller) CreateRoad(ctx echo.Context) error {
	var req dto.CreateRoadRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	road, err := c.registry.CreateRoad(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, road)
}

func (c *Controller) UpdateRoad(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var patch dto.RoadPatch
	if err = ctx.Bind(&patch); err != nil {
		return err
	}

	road, err := c.registry.UpdateRoad(ctx.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, road)
}

func (c *Controller) DeleteRoad(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err = c.registry.DeleteRoad(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
