package database

import (
	"fmt"

	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// zapWriter adapts zap to the gorm logger Writer interface
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Infof(format, args...)
}

// Connect opens the postgres connection and configures the pool
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	// Configure GORM logger
	gormLogger := logger.New(
		zapWriter{log: log.Named("gorm").Sugar()},
		logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	var version string
	if err := db.Raw("SELECT version()").Scan(&version).Error; err == nil {
		log.Info("connected to database", zap.String("version", version))
	}

	return db, nil
}
