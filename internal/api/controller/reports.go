package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/service/reports"
)

func (c *Controller) GetDashboardStats(ctx echo.Context) error {
	stats, err := c.reports.DashboardStats(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetReport serves every reports-page breakdown. wardId and year are optional, "all" means unfiltered.
func (c *Controller) GetReport(ctx echo.Context) error {
	var filter reports.Filter

	wardID, err := queryInt64(ctx, "wardId")
	if err != nil {
		return err
	}
	filter.WardID = wardID

	year, err := queryInt64(ctx, "year")
	if err != nil {
		return err
	}
	if year != nil {
		y := int(*year)
		filter.Year = &y
	}

	report, err := c.reports.Report(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}
