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
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/job"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/realtime"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/router"
	"kitchen-planner-api/internal/token"
)

const dbStatsInterval = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Kitchen Planner",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage", cfg.Storage.Driver),
	)

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.SafeAutoMigrate(db, logger); err != nil {
		return err
	}
	logger.Info("Database migrations completed")

	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	statsDone := database.StartDBStatsCollector(db, m, dbStatsInterval)
	defer close(statsDone)

	var redisClient *redis.Client
	var revocation token.RevocationStore = token.NewMemoryRevocationStore()
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		revocation = token.NewRedisRevocationStore(redisClient)
	} else {
		logger.Info("Redis disabled, token revocations are kept in memory")
	}

	images, err := openImageStore(cfg, m, logger)
	if err != nil {
		return err
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("JWT secret not configured, using a random secret; tokens will not survive a restart")
	}
	tokens := token.NewManager(secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	if cfg.Seed.OnStart {
		if err := runSeed(cmd.Context(), cfg, db, logger); err != nil {
			logger.Warn("Failed to seed database", zap.Error(err))
		}
	}

	repos := repository.NewRepositories(db)
	collector := metrics.NewBusinessMetricsCollector(repos.Projects, repos.Recipes, repos.Users, m, logger)
	collector.Start()
	defer collector.Stop()

	cleanup := job.NewCleanupJob(repos.Invitations, repos.Projects, repos.Recipes, images, cfg.Jobs.OrphanGracePeriod, logger)
	scheduler, err := job.NewScheduler(cfg.Jobs.CleanupSchedule, cleanup, logger)
	if err != nil {
		return err
	}
	defer func() { <-scheduler.Stop().Done() }()

	stop := make(chan struct{})
	defer close(stop)

	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		BasePath:       cfg.Server.BasePath,
		Metrics:        m,
		Tokens:         tokens,
		Revocation:     revocation,
		BcryptCost:     cfg.Auth.BcryptCost,
		LoginRate:      cfg.Auth.LoginRate,
		LoginBurst:     cfg.Auth.LoginBurst,
		Images:         images,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		InvitationTTL:  cfg.Invitation.TTL,
		PublicURL:      cfg.Server.PublicURL,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		Hub:            realtime.NewHub(logger),
		Redis:          redisClient,
		Stop:           stop,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Kitchen Planner started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
	return nil
}
