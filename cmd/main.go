package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/edumynt/backend/docs"
	"github.com/edumynt/backend/internal/blocks"
	"github.com/edumynt/backend/internal/cache"
	"github.com/edumynt/backend/internal/handlers"
	"github.com/edumynt/backend/internal/repositories"
	"github.com/edumynt/backend/internal/services"
	"github.com/edumynt/backend/libs/auth/middleware"
	"github.com/edumynt/backend/libs/auth/service"
	"github.com/edumynt/backend/libs/config"
	"github.com/edumynt/backend/libs/logger"
	loggerMiddleware "github.com/edumynt/backend/libs/logger/middleware"
	sharedMiddleware "github.com/edumynt/backend/libs/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title EduMynt Learning API
// @version 1.0
// @description API for browsing courses, taking lessons and tracking progress

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting EduMynt Learning Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize render cache
	renderCache, closeCache := setupRenderCache(cfg)
	defer closeCache()

	// Initialize token validator
	tokenValidator := service.NewTokenValidator(cfg.JWT.Secret, cfg.JWT.Audience)

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	progressRepo := repositories.NewLessonProgressRepository(db)

	// Initialize services
	renderer := blocks.NewLessonRenderer(blocks.DefaultRegistry(), logger.Logger)
	catalogService := services.NewCatalogService(courseRepo, lessonRepo, enrollmentRepo)
	lessonService := services.NewLessonService(courseRepo, lessonRepo, enrollmentRepo, progressRepo, renderer, renderCache, logger.Logger)
	dashboardService := services.NewDashboardService(lessonRepo, enrollmentRepo, progressRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(logger.Logger)
	demoHandler := handlers.NewDemoHandler(lessonService, logger.Logger)
	courseHandler := handlers.NewCourseHandler(catalogService, logger.Logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, logger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenValidator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		healthHandler.RegisterRoutes(r)
		demoHandler.RegisterRoutes(r)
		courseHandler.RegisterRoutes(r, authMiddleware)
		lessonHandler.RegisterRoutes(r, authMiddleware)
		dashboardHandler.RegisterRoutes(r, authMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "edumynt_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// setupRenderCache connects the Redis render cache, or disables caching when Redis is not configured.
// The returned function closes the connection.
func setupRenderCache(cfg *config.Config) (services.RenderCache, func()) {
	addr := cfg.RedisAddr()
	if addr == "" {
		logger.Logger.Info("Redis not configured, render cache disabled")
		return cache.NoopCache{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Rendering works without the cache, so an unreachable Redis is not fatal
		logger.Logger.Warn("Failed to connect to Redis, render cache disabled", zap.String("addr", addr), zap.Error(err))
		client.Close()
		return cache.NoopCache{}, func() {}
	}

	logger.Logger.Info("Render cache enabled", zap.String("addr", addr), zap.Duration("ttl", cfg.RenderCache.TTL))
	return cache.NewRenderCache(client, cfg.RenderCache.TTL, logger.Logger), func() { client.Close() }
}
