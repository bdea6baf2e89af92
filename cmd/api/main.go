package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/colisgo/delivery-platform/internal/api"
	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/service"
	"github.com/colisgo/delivery-platform/internal/infrastructure/config"
	mongodb "github.com/colisgo/delivery-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/colisgo/delivery-platform/internal/infrastructure/db/redis"
	"github.com/colisgo/delivery-platform/internal/infrastructure/queue"
	"github.com/colisgo/delivery-platform/pkg/logger"
)

// @title           ColisGo Delivery Platform API
// @version         1.0
// @description     Delivery matching and lifecycle API for the ColisGo mobile apps.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Indexes ---
	deliveryRepo := mongodb.NewDeliveryRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	driverRepo := mongodb.NewDriverRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"deliveries":    deliveryRepo.EnsureIndexes,
		"users":         authRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	if cfg.Env == "development" {
		if err := driverRepo.Seed(ctx, devDrivers()); err != nil {
			log.Warn().Err(err).Msg("driver seed failed")
		}
	}

	// --- Notification pipeline ---
	notificationService := service.NewNotificationService(notificationRepo, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg.JWTSecret, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// devDrivers seeds the courier directory for local development so the matching
// screen has someone to show.
func devDrivers() []*domain.Driver {
	lyonCenter := &domain.Coordinates{Latitude: 45.7640, Longitude: 4.8357}
	partDieu := &domain.Coordinates{Latitude: 45.7606, Longitude: 4.8590}
	return []*domain.Driver{
		{
			ID:              "driver-dev-001",
			Name:            "Pierre Martin",
			Email:           "pierre.martin@colisgo.dev",
			IsOnline:        true,
			IsVerified:      true,
			VehicleType:     "bike",
			VehiclePlate:    "",
			Rating:          4.8,
			TotalDeliveries: 132,
			CurrentLocation: lyonCenter,
		},
		{
			ID:              "driver-dev-002",
			Name:            "Marie Dubois",
			Email:           "marie.dubois@colisgo.dev",
			IsOnline:        true,
			IsVerified:      true,
			VehicleType:     "car",
			VehiclePlate:    "AB-123-CD",
			Rating:          4.6,
			TotalDeliveries: 87,
			CurrentLocation: partDieu,
		},
	}
}
