package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/config"
	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/repository"
	"kitchen-planner-api/internal/seed"
	"kitchen-planner-api/internal/service"
	"kitchen-planner-api/internal/token"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo user, recipe and project into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			return err
		}
		return runSeed(cmd.Context(), cfg, db, logger)
	},
}

func runSeed(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	tx := database.NewTransactor(db)
	repos := repository.NewRepositories(db)
	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	preloader := seed.NewPreloader(
		repos.Users,
		service.NewCredentialsService(tx, repos.Users, tokens, token.NewMemoryRevocationStore(), cfg.Auth.BcryptCost, nil, logger),
		service.NewRecipeService(tx, repos, nil, nil, logger),
		service.NewProjectService(tx, repos, nil, nil, logger),
		logger,
	)
	_, err := preloader.Seed(ctx, cfg.Seed.Username, cfg.Seed.Password)
	return err
}
