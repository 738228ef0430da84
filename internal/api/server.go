package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/socialchain/antibot/internal/logger"
)

// NewEcho builds the HTTP server, grounded on the teacher's setAPIEcho:
// panic recovery, open CORS, a per-request event ID threaded through slog,
// OpenTelemetry tracing and Prometheus request metrics, then this service's
// three routes registered over Handler.
func NewEcho(log *slog.Logger, h *Handler, tracingEnabled bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqCtx := context.WithValue(req.Context(), logger.EventIDField, uuid.New().String())
			c.SetRequest(req.WithContext(reqCtx))
			return next(c)
		}
	})

	if tracingEnabled {
		e.Use(otelecho.Middleware("social-antibot-api"))
	}

	e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(log)))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "api",
	}))

	RegisterRoutes(e, h)

	return e
}

// RegisterRoutes binds Handler's methods to the service's HTTP surface
// (SPEC_FULL.md §1, §4.7).
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/v1/social")
	g.POST("/check-item", h.CheckItem)
	g.POST("/check-block", h.CheckBlock)
	g.GET("/user/:address/state", h.UserState)
}

func requestLogConfig(log *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				log.InfoContext(ctx, "REQUEST", slog.String("uri", v.URI), slog.Int("status", v.Status))
			} else {
				log.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("uri", v.URI), slog.Int("status", v.Status), slog.String("err", v.Error.Error()))
			}
			return nil
		},
	}
}
