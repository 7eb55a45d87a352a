package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (c *Controller) ListVendors(ctx echo.Context) error {
	vendors, err := c.registry.ListVendors(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}

func (c *Controller) GetVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	vendor, err := c.registry.GetVendor(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendor)
}

func (c *Controller) CreateVendor(ctx echo.Context) error {
	var req dto.CreateVendorRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	vendor, err := c.registry.CreateVendor(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, vendor)
}

func (c *Controller) UpdateVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var patch dto.VendorPatch
	if err = ctx.Bind(&patch); err != nil {
		return err
	}

	vendor, err := c.registry.UpdateVendor(ctx.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendor)
}

func (c *Controller) DeleteVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err = c.registry.DeleteVendor(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
