package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/emsp/platform/docs"
	"github.com/emsp/platform/internal/api/handler"
	"github.com/emsp/platform/internal/api/middleware"
	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
)

// Dependencies are the use cases and probes the router exposes.
type Dependencies struct {
	Logger   zerolog.Logger
	Auth     ports.AuthService
	Profiles ports.ProfileService
	Products ports.ProductService
	Orders   ports.OrderService
	Moments  ports.MomentService
	// Readiness lists the dependency pings behind /health/ready.
	Readiness map[string]handler.Check
	// Registerer receives the HTTP request metrics. Defaults to the
	// Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "emsp",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authMiddleware := middleware.Auth(deps.Auth)
	adminOnly := middleware.RBAC(deps.Logger, domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/verify", authHandler.Verify)

	// --- Own profile ---
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	auth.GET("/me", profileHandler.Get, authMiddleware)
	profile := e.Group("/api/users/profile", authMiddleware)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	// --- Products: reads are public, writes are admin only ---
	productHandler := handler.NewProductHandler(deps.Products)
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authMiddleware, adminOnly)
	products.PUT("/:id", productHandler.Update, authMiddleware, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authMiddleware, adminOnly)

	// --- Orders: every route requires a user ---
	orderHandler := handler.NewOrderHandler(deps.Orders)
	orders := e.Group("/api/orders", authMiddleware)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)

	// --- Moments: reads are public ---
	momentHandler := handler.NewMomentHandler(deps.Moments)
	moments := e.Group("/api/moments")
	moments.GET("", momentHandler.List)
	moments.GET("/admin", momentHandler.ListAll, authMiddleware, adminOnly)
	moments.PUT("/admin/:id/status", momentHandler.SetStatus, authMiddleware, adminOnly)
	moments.GET("/:id", momentHandler.Get)
	moments.POST("", momentHandler.Create, authMiddleware)
	moments.DELETE("/:id", momentHandler.Delete, authMiddleware)
	moments.POST("/:id/like", momentHandler.Like, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
