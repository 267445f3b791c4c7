package database

import (
	"errors"
	"fmt"

	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Models lists every table managed by AutoMigrate, parents first
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Environment{},
		&models.Material{},
		&models.BrandMapping{},
		&models.LogEntry{},
	}
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("migrating database schema")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database schema migrated")
	return nil
}

// SeedAdmin creates the configured administrator when no user exists yet.
// Without a configured password one is generated and logged once.
func SeedAdmin(db *gorm.DB, cfg config.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password, generated := cfg.Password, false
	if password == "" {
		var err error
		if password, err = utils.GenerateSecurePassword(16); err != nil {
			return err
		}
		generated = true
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    cfg.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info("seeded administrator", zap.String("email", cfg.Email))
	if generated {
		log.Warn("administrator password was generated, change it after the first login",
			zap.String("email", cfg.Email),
			zap.String("password", password),
		)
	}
	return nil
}
