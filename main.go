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

	v1 "github.com/Fernandolass/frontend-lab-eng-sub000/api/v1"
	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/database"
	"github.com/Fernandolass/frontend-lab-eng-sub000/logger"
	"github.com/Fernandolass/frontend-lab-eng-sub000/middleware"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	db, err := database.Connect(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}
	if err := database.SeedAdmin(db, cfg.Admin, zapLogger); err != nil {
		zapLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	store, closeStore := initDraftStore(cfg.Redis, zapLogger)
	defer closeStore()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zapLogger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: !allowsAll(cfg.Server.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))
	// PDF and XLSX downloads are already compressed
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`/gerar-pdf/$`, `/exportar/$`})))

	router.GET("/health", v1.HealthCheck)
	v1.RegisterRoutes(router.Group("/api"), buildServices(db, store, cfg, zapLogger))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func buildServices(db *gorm.DB, store services.DraftStore, cfg *config.Config, log *zap.Logger) v1.Services {
	projects := services.NewProjectService(db, log)
	logs := services.NewLogService(db)
	return v1.Services{
		Auth:         services.NewAuthService(repositories.NewUserRepository(db), cfg.JWT),
		Projects:     projects,
		Environments: services.NewEnvironmentService(db),
		Materials:    services.NewMaterialService(db, log),
		Brands:       services.NewBrandService(db),
		Logs:         logs,
		Export:       services.NewExportService(logs),
		Stats:        services.NewStatsService(db),
		PDF:          services.NewPDFService(projects),
		Users:        services.NewUserService(db),
		Drafts:       services.NewDraftService(store, db),
		PageSize:     cfg.Pagination.PageSize,
	}
}

// initDraftStore connects to redis when an address is configured and falls
// back to process memory otherwise or when redis is unreachable.
func initDraftStore(cfg config.RedisConfig, log *zap.Logger) (services.DraftStore, func()) {
	if cfg.Addr == "" {
		log.Info("Redis not configured, keeping drafts in memory")
		return services.NewMemoryDraftStore(cfg.DraftTTL), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, keeping drafts in memory", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = rdb.Close()
		return services.NewMemoryDraftStore(cfg.DraftTTL), func() {}
	}

	log.Info("Redis connected", zap.String("addr", cfg.Addr))
	return services.NewRedisDraftStore(rdb, cfg.DraftTTL), func() { _ = rdb.Close() }
}

func allowsAll(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
