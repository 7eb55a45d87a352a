package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (c *Controller) ListWards(ctx echo.Context) error {
	wards, err := c.registry.ListWards(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wards)
}

func (c *Controller) GetWard(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	ward, err := c.registry.GetWard(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ward)
}

func (c *Controller) CreateWard(ctx echo.Context) error {
	var req dto.CreateWardRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	ward, err := c.registry.CreateWard(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, ward)
}
