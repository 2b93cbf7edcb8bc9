package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/tubeblog/docs"
	"github.com/johnquangdev/tubeblog/internal/adapter/handler"
	"github.com/johnquangdev/tubeblog/internal/adapter/repository"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/database"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/assemblyai"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/llm"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/external/youtube"
	"github.com/johnquangdev/tubeblog/internal/infrastructure/storage"
	"github.com/johnquangdev/tubeblog/internal/usecase/auth"
	"github.com/johnquangdev/tubeblog/internal/usecase/blog"
	"github.com/johnquangdev/tubeblog/pkg/config"
	"github.com/johnquangdev/tubeblog/pkg/jwt"
	"github.com/johnquangdev/tubeblog/pkg/logger"
	pkgvalidator "github.com/johnquangdev/tubeblog/pkg/validator"
)

// @title           TubeBlog API
// @version         1.0
// @description     Turns YouTube videos into blog articles using captions or speech transcription

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Server, cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(appLogger)
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	appLogger.Info("🔧 Initializing dependencies...")

	// Initialize Database
	appLogger.Info("📦 Connecting to database...", zap.String("driver", cfg.Database.Driver))
	db, err := database.NewDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// SQLite has no migration files; its schema always comes from the models
	if cfg.Database.AutoMigrate || cfg.Database.Driver == database.DriverSQLite {
		if err := database.Migrate(db, cfg.Database.Driver); err != nil {
			appLogger.Fatal("Failed to migrate database", zap.Error(err))
		}
	} else {
		appLogger.Info("🔄 Skipping migrations; run `tubeblogctl migrate` to apply them")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Initialize YouTube components
	var infoSource youtube.InfoSource = youtube.NewYTDLPInfoSource(cfg.YouTube.YTDLPPath)
	if cfg.YouTube.APIKey != "" {
		dataAPI, err := youtube.NewDataAPISource(context.Background(), cfg.YouTube.APIKey)
		if err != nil {
			appLogger.Fatal("Failed to create YouTube Data API client", zap.Error(err))
		}
		infoSource = dataAPI
		appLogger.Info("📺 Video metadata from YouTube Data API")
	}
	captions := youtube.NewCaptionFetcher(&cfg.YouTube, appLogger)
	metadata := youtube.NewMetadataFetcher(infoSource, appLogger)
	audio := youtube.NewAudioRetriever(cfg.YouTube.YTDLPPath, "", appLogger)

	// Initialize AI components
	transcriber := assemblyai.NewTranscriber(cfg, appLogger)
	if !transcriber.Configured() {
		appLogger.Warn("⚠️  ASSEMBLYAI_API_KEY not set; full transcription is disabled")
	}
	generator := llm.NewGenerator(cfg, appLogger)
	if !generator.Configured() {
		appLogger.Warn("⚠️  LLM_API_KEY not set; article generation is disabled")
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authService := auth.NewService(userRepo, jwtManager, appLogger)

	// Object storage is optional; without it exports return 503
	var store blog.ArticleStore
	var minioClient *storage.MinIOClient
	if cfg.Storage.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		minioClient, err = storage.NewMinIOClient(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			appLogger.Fatal("Failed to initialize MinIO", zap.Error(err))
		}
		store = minioClient
		appLogger.Info("🪣 MinIO storage enabled", zap.String("bucket", cfg.Storage.BucketName))
	}

	blogService := blog.NewService(captions, metadata, audio, transcriber, generator, blogRepo, store, cfg, appLogger)

	router := handler.NewRouter(cfg,
		handler.NewAuth(authService, appLogger),
		handler.NewBlogHandler(blogService, appLogger),
		authService,
		appLogger,
	)
	if minioClient != nil {
		router.AddHealthCheck("storage", minioClient)
	}
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		appLogger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("✅ Server stopped gracefully")
}
