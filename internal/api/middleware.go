package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
	"github.com/ougirez/roadtrack/internal/pkg/metrics"
)

// ActorMiddleware attributes the request to the user named in the X-User-Id / X-User-Name headers.
// The headers are trusted as-is, nothing is authenticated.
func (svc *APIService) ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(constants.HeaderUserID)
		if id != "" {
			actor := domain.Actor{ID: id, Name: ctx.Request().Header.Get(constants.HeaderUserName)}
			ctx.SetRequest(ctx.Request().WithContext(domain.WithActor(ctx.Request().Context(), actor)))
		}
		return next(ctx)
	}
}

// RequestContextMiddleware tags every log line of the request with its id.
func (svc *APIService) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Response().Header().Get(echo.HeaderXRequestID)
		if id != "" {
			ctx.SetRequest(ctx.Request().WithContext(logger.WithFields(ctx.Request().Context(), "request_id", id)))
		}
		return next(ctx)
	}
}

func requestLogger(m *metrics.Metrics) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			m.ObserveRequest(v.RoutePath, v.Method, v.Status, v.Latency)

			ctx := c.Request().Context()
			if v.Error != nil {
				logger.Warnf(ctx, "%s %s -> %d in %s: %s", v.Method, v.URI, v.Status, v.Latency, v.Error.Error())
				return nil
			}
			logger.Infof(ctx, "%s %s -> %d in %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}
