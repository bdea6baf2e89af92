package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/colisgo/delivery-platform/docs"
	"github.com/colisgo/delivery-platform/internal/api/handler"
	"github.com/colisgo/delivery-platform/internal/api/middleware"
	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/service"
	mongodb "github.com/colisgo/delivery-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/colisgo/delivery-platform/internal/infrastructure/db/redis"
	"github.com/colisgo/delivery-platform/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, notifier service.Notifier) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("colisgo"))

	// --- Dependencies ---
	deliveryRepo := mongodb.NewDeliveryRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	driverRepo := mongodb.NewDriverRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	pricingService := service.NewPricingService()
	deliveryService := service.NewDeliveryService(deliveryRepo, driverRepo, pricingService, dedup, notifier, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	driverService := service.NewDriverService(driverRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	quoteHandler := handler.NewQuoteHandler(pricingService)
	driverHandler := handler.NewDriverHandler(driverService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Delivery lifecycle ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/deliveries", deliveryHandler.Create,
		middleware.RequireUserType(domain.UserTypeClient, domain.UserTypeSupplier))
	v1.GET("/deliveries", deliveryHandler.List)
	v1.GET("/deliveries/active", deliveryHandler.Active)
	v1.GET("/deliveries/:id", deliveryHandler.Get)
	v1.POST("/deliveries/:id/accept", deliveryHandler.Accept,
		middleware.RequireUserType(domain.UserTypeDriver))
	v1.PATCH("/deliveries/:id/status", deliveryHandler.UpdateStatus)
	v1.POST("/deliveries/:id/rating", deliveryHandler.Rate,
		middleware.RequireUserType(domain.UserTypeClient, domain.UserTypeSupplier))

	// --- Quotes and directory ---
	v1.POST("/quotes", quoteHandler.Estimate)
	v1.GET("/drivers/nearby", driverHandler.Nearby,
		middleware.RequireUserType(domain.UserTypeClient, domain.UserTypeSupplier))

	// --- Notifications ---
	v1.GET("/notifications", notificationHandler.List)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
