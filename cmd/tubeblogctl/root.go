package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/tubeblog/internal/adapter/repository"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/database"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/storage"
	"github.com/johnquangdev/tubeblog/internal/usecase/auth"
	"github.com/johnquangdev/tubeblog/pkg/config"
	"github.com/johnquangdev/tubeblog/pkg/jwt"
	"github.com/johnquangdev/tubeblog/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "tubeblogctl",
	Short:        "Administrative commands for the TubeBlog service",
	SilenceUsage: true,
}

// app holds the dependencies shared by the commands
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Server, cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{cfg: cfg, logger: log, db: db}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	_ = database.CloseDB(a.db)
}

func (a *app) authService() *auth.Service {
	jwtManager := jwt.NewManager(
		a.cfg.JWT.AccessSecret,
		a.cfg.JWT.RefreshSecret,
		a.cfg.JWT.AccessExpiry,
		a.cfg.JWT.RefreshExpiry,
	)
	return auth.NewService(repository.NewUserRepository(a.db), jwtManager, a.logger)
}

// storage returns the MinIO client, or nil when storage is disabled
func (a *app) storage(ctx context.Context) (*storage.MinIOClient, error) {
	if !a.cfg.Storage.Enabled {
		return nil, nil
	}
	return storage.NewMinIOClient(ctx, &a.cfg.Storage)
}
