package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/booking-platform/internal/config"
	"github.com/iliyamo/booking-platform/internal/database"
	"github.com/iliyamo/booking-platform/internal/handler"
	"github.com/iliyamo/booking-platform/internal/middleware"
	"github.com/iliyamo/booking-platform/internal/queue"
	"github.com/iliyamo/booking-platform/internal/repository"
	"github.com/iliyamo/booking-platform/internal/router"
	queue_publisher "github.com/iliyamo/booking-platform/internal/service"
	"github.com/iliyamo/booking-platform/pkg/logger"
)

func main() {
	_ = godotenv.Load() // best effort; real env vars win

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "dev"})

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting and caching disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(echoprometheus.NewMiddleware("booking"))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.GET("/metrics", echoprometheus.NewHandler())

	userRepo := repository.NewUserRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	userHandler := handler.NewUserHandler(userRepo)
	reservationHandler := handler.NewReservationHandler(userRepo, reservationRepo, queue_publisher.PublishReservationCreated)

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, authHandler, userHandler, cacheMW)
	router.RegisterProtected(e, authHandler, reservationHandler, cfg.JWTSecret)

	// The audit consumer reconnects on its own; it only stops when the
	// process exits.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Error().Err(err).Msg("reservation consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
