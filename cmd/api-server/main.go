package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studyrooms/database"
	"studyrooms/internal/cache"
	"studyrooms/internal/config"
	"studyrooms/internal/handler"
	"studyrooms/internal/logging"
	"studyrooms/internal/metrics"
	"studyrooms/internal/middleware"
	"studyrooms/internal/repository"
	"studyrooms/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg)
	metrics.Register()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}

	// Caching is optional; a nil client degrades to direct reads.
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, caching disabled")
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	floorRepo := repository.NewFloorRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	materialRepo := repository.NewMaterialRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	libraryService := service.NewLibraryService(libraryRepo)
	floorService := service.NewFloorService(floorRepo, libraryRepo)
	roomService := service.NewRoomService(roomRepo, floorRepo, reservationRepo)
	reservationService := service.NewReservationService(reservationRepo, roomRepo, cacheClient)
	materialService := service.NewMaterialService(materialRepo, libraryRepo)
	statsService := service.NewStatsService(libraryRepo, floorRepo, roomRepo, reservationRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg, logger)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	floorHandler := handler.NewFloorHandler(floorService)
	roomHandler := handler.NewRoomHandler(roomService, cacheClient)
	reservationHandler := handler.NewReservationHandler(reservationService)
	materialHandler := handler.NewMaterialHandler(materialService)
	statsHandler := handler.NewStatsHandler(statsService, cacheClient)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg))

	authRequired := middleware.AuthMiddleware(authService)

	authHandler.RegisterRoutes(r.Group("/auth"))
	libraryHandler.RegisterRoutes(r.Group("/libraries"), authRequired)
	floorHandler.RegisterRoutes(r.Group("/floors"), authRequired)
	roomHandler.RegisterRoutes(r.Group("/rooms"), authRequired)
	reservationHandler.RegisterRoutes(r.Group("/reservations"), authRequired)
	materialHandler.RegisterRoutes(r.Group("/materials"), authRequired)
	statsHandler.RegisterRoutes(r.Group("/demo"))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Int("port", cfg.HTTPPort).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
	}
}
