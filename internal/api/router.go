package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/bleubean/pos-admin-gateway/internal/api/handler"
	"github.com/bleubean/pos-admin-gateway/internal/api/middleware"
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/service"
	redisdb "github.com/bleubean/pos-admin-gateway/internal/infrastructure/db/redis"
	"github.com/bleubean/pos-admin-gateway/internal/pkg/config"
	"github.com/bleubean/pos-admin-gateway/internal/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("posadmin"))

	// --- Dependencies ---
	store := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authClient := upstream.NewAuthClient(cfg.Upstreams.AuthBaseURL, cfg.Upstreams.Timeout)
	employeeClient := upstream.NewEmployeeClient(cfg.Upstreams.EmployeeBaseURL, cfg.Upstreams.PlaceholderImageURL, cfg.Upstreams.Timeout)
	productClient := upstream.NewProductClient(cfg.Upstreams.ProductBaseURL, cfg.Upstreams.PlaceholderImageURL, cfg.Upstreams.Timeout)
	discountClient := upstream.NewDiscountClient(cfg.Upstreams.DiscountBaseURL, cfg.Upstreams.Timeout)

	sessionService := service.NewSessionService(authClient, store, log)
	employeeService := service.NewEmployeeService(employeeClient, sessionService, log)
	productService := service.NewProductService(productClient, sessionService, log)
	discountService := service.NewDiscountService(discountClient, sessionService, log)

	authHandler := handler.NewAuthHandler(sessionService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	productHandler := handler.NewProductHandler(productService)
	discountHandler := handler.NewDiscountHandler(discountService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Record managers (admin and manager only) ---
	admin := e.Group("/admin",
		middleware.Session(sessionService),
		middleware.RBAC(domain.RoleAdmin, domain.RoleManager),
	)

	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	admin.GET("/products", productHandler.List)

	admin.GET("/discounts", discountHandler.List)
	admin.POST("/discounts", discountHandler.Create)
	admin.PUT("/discounts/:id", discountHandler.Update)
	admin.DELETE("/discounts/:id", discountHandler.Delete)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, map[string]string{
		"auth":      cfg.Upstreams.AuthBaseURL,
		"employees": cfg.Upstreams.EmployeeBaseURL,
		"products":  cfg.Upstreams.ProductBaseURL,
		"discounts": cfg.Upstreams.DiscountBaseURL,
	})

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
