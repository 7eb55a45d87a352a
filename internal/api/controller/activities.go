package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
)

func (c *Controller) ListActivities(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid limit %q: %w", raw, constants.ErrBadRequest)
		}
		limit = n
	}

	activities, err := c.activity.List(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, activities)
}

func (c *Controller) CreateActivity(ctx echo.Context) error {
	var req dto.CreateActivityRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	activity, err := c.activity.Record(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, activity)
}
