package controller

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/ougirez/roadtrack/internal/service/registry"
	"github.com/ougirez/roadtrack/internal/service/reports"
)

type Controller struct {
	registry *registry.Service
	activity *activity.Service
	reports  *reports.Service
}

func NewController(registry *registry.Service, activity *activity.Service, reports *reports.Service) *Controller {
	return &Controller{registry: registry, activity: activity, reports: reports}
}

func pathID(ctx echo.Context) (int64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", raw, constants.ErrBadRequest)
	}
	return id, nil
}

// queryInt64 returns nil when the parameter is absent or "all".
func queryInt64(ctx echo.Context, name string) (*int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" || raw == "all" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, raw, constants.ErrBadRequest)
	}
	return &v, nil
}
