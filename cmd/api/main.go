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
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-notes-analyzer/docs"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/jwt"
	applog "github.com/johnquangdev/meeting-notes-analyzer/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-notes-analyzer/pkg/validator"
)

// @title           Meeting Notes Analyzer API
// @version         1.0
// @description     Deterministic extraction of decisions, action items, clarification points and upcoming points from meeting notes.

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := applog.New(cfg.Server.Environment, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("❌ server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("🔧 Initializing dependencies...")

	// Pipeline
	vocab, err := notes.LoadVocabulary(cfg.Analyzer.VocabularyFile)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	analyzer, err := notes.New(notes.Config{Vocabulary: &vocab, ContextRadius: cfg.Analyzer.ContextRadius})
	if err != nil {
		return fmt.Errorf("compile vocabulary: %w", err)
	}

	// Database
	logger.Info("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			return fmt.Errorf("DB_AUTO_MIGRATE is enabled in production; run cmd/migrate instead")
		}
		if _, err := database.Migrate(db, cfg.Database.MigrationsDir, migrate.Up, logger); err != nil {
			return err
		}
	}

	// Fast cache: Redis when configured, in-memory otherwise
	var analysisCache repositories.AnalysisCache
	if cfg.Redis.Host != "" {
		logger.Info("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		analysisCache = cache.NewRedisStore(redisClient)
	} else {
		logger.Info("⚠️  REDIS_HOST not set, using in-memory cache")
		memory := cache.NewMemoryStore()
		defer memory.Close()
		analysisCache = memory
	}

	// Object storage is optional
	var source repositories.NoteSource
	if cfg.Storage.Endpoint != "" {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			return err
		}
		source = minioClient
	}

	svc := analysis.NewService(
		analyzer,
		repository.NewAnalysisRepository(db),
		analysisCache,
		source,
		metrics.Default(),
		logger,
		analysis.Options{
			CacheTTL:      cfg.Analyzer.CacheTTL,
			MaxInputBytes: cfg.Analyzer.MaxInputBytes,
		},
	)

	var authMW echo.MiddlewareFunc
	if cfg.JWT.AccessSecret != "" {
		jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
		authMW = httpmw.EchoAuth(jwtManager, logger)
	} else {
		logger.Warn("⚠️  JWT_ACCESS_SECRET not set, /v1 is not authenticated")
	}

	e := newEcho(cfg, logger)
	handler.NewRouter(cfg, handler.NewNotesHandler(svc, logger), authMW).Setup(e)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("✅ Server stopped gracefully")
	return nil
}

func newEcho(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgvalidator.New()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("http.request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", 2*cfg.Analyzer.MaxInputBytes/1024+64)))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	return e
}
