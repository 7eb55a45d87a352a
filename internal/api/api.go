package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/roadtrack/internal/api/controller"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/metrics"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/ougirez/roadtrack/internal/service/registry"
	"github.com/ougirez/roadtrack/internal/service/reports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIService struct {
	router *echo.Echo
}

type Services struct {
	Registry *registry.Service
	Activity *activity.Service
	Reports  *reports.Service
}

type Options struct {
	CORSOrigins []string
	Metrics     *metrics.Metrics
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for httptest.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(services Services, opts Options) *APIService {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.ERROR)
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	svc.router.Use(svc.RequestContextMiddleware)
	svc.router.Use(requestLogger(opts.Metrics))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, constants.HeaderUserID, constants.HeaderUserName},
	}))

	svc.router.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, domain.HealthResponse{Status: "ok"})
	})
	if opts.Gatherer != nil {
		svc.router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	cntrl := controller.NewController(services.Registry, services.Activity, services.Reports)
	api := svc.router.Group("/api", svc.ActorMiddleware)

	api.GET("/dashboard/stats", cntrl.GetDashboardStats)
	api.GET("/reports", cntrl.GetReport)

	roads := api.Group("/roads")
	roads.GET("", cntrl.ListRoads)
	roads.POST("", cntrl.CreateRoad)
	roads.GET("/:id", cntrl.GetRoad)
	roads.PATCH("/:id", cntrl.UpdateRoad)
	roads.DELETE("/:id", cntrl.DeleteRoad)

	vendors := api.Group("/vendors")
	vendors.GET("", cntrl.ListVendors)
	vendors.POST("", cntrl.CreateVendor)
	vendors.GET("/:id", cntrl.GetVendor)
	vendors.PATCH("/:id", cntrl.UpdateVendor)
	vendors.DELETE("/:id", cntrl.DeleteVendor)

	projects := api.Group("/projects")
	projects.GET("", cntrl.ListProjects)
	projects.POST("", cntrl.CreateProject)
	projects.GET("/:id", cntrl.GetProject)
	projects.PATCH("/:id", cntrl.UpdateProject)
	projects.DELETE("/:id", cntrl.DeleteProject)

	activities := api.Group("/activities")
	activities.GET("", cntrl.ListActivities)
	activities.POST("", cntrl.CreateActivity)

	wards := api.Group("/wards")
	wards.GET("", cntrl.ListWards)
	wards.POST("", cntrl.CreateWard)
	wards.GET("/:id", cntrl.GetWard)

	return svc
}
