package main

import (
	"os"

	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/database"
	"github.com/Fernandolass/frontend-lab-eng-sub000/logger"
	"go.uber.org/zap"
)

// Copies every table from SOURCE_DATABASE_URL into TARGET_DATABASE_URL,
// migrating the target schema first.
func main() {
	config.LoadEnv()

	log, err := logger.New(config.GetEnv("LOG_LEVEL", "info"), "console")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	sourceDBURL := os.Getenv("SOURCE_DATABASE_URL")
	targetDBURL := os.Getenv("TARGET_DATABASE_URL")
	if sourceDBURL == "" || targetDBURL == "" {
		log.Fatal("SOURCE_DATABASE_URL and TARGET_DATABASE_URL are required")
	}

	dbCfg := config.DatabaseConfig{MaxOpenConns: 10, MaxIdleConns: 2}

	dbCfg.URL = sourceDBURL
	sourceDB, err := database.Connect(dbCfg, log.Named("source"))
	if err != nil {
		log.Fatal("Failed to connect to source database", zap.Error(err))
	}

	dbCfg.URL = targetDBURL
	targetDB, err := database.Connect(dbCfg, log.Named("target"))
	if err != nil {
		log.Fatal("Failed to connect to target database", zap.Error(err))
	}

	if err := database.Migrate(targetDB, log); err != nil {
		log.Fatal("Failed to migrate target database schema", zap.Error(err))
	}
	if err := database.CopyData(sourceDB, targetDB, log); err != nil {
		log.Fatal("Data copy failed", zap.Error(err))
	}
	log.Info("Database copy completed successfully")
}
