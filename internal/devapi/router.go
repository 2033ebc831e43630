package devapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(repo UserRepository, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// HTTP metrics go to a per-router registry so building a second router
	// (tests do) never collides with the default registry; /metrics gathers
	// both it and the global handler counters.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "circuna_devapi",
		Registerer: reg,
	}))

	h := NewHandler(repo)

	// --- The four endpoints the client consumes ---
	e.GET("/users/by-phone/:phone", h.ByPhone)
	e.GET("/users/:id", h.ByID)
	e.GET("/roles", h.Roles)
	e.POST("/users/register", h.Register)

	// --- Operational endpoints ---
	e.GET("/health", h.Health)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))

	return e
}
