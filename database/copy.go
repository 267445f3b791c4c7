package database

import (
	"fmt"

	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const copyBatchSize = 500

// CopyData copies every table from source to target, parents first. Rows
// whose primary key already exists in target are skipped, so an interrupted
// copy can be run again.
func CopyData(source, target *gorm.DB, log *zap.Logger) error {
	log.Info("starting data copy from source to target")

	steps := []struct {
		name string
		copy func() (int64, error)
	}{
		{"users", func() (int64, error) { return copyTable[models.User](source, target) }},
		{"projects", func() (int64, error) { return copyTable[models.Project](source, target) }},
		{"environments", func() (int64, error) { return copyTable[models.Environment](source, target) }},
		{"materials", func() (int64, error) { return copyTable[models.Material](source, target) }},
		{"brand mappings", func() (int64, error) { return copyTable[models.BrandMapping](source, target) }},
		{"log entries", func() (int64, error) { return copyTable[models.LogEntry](source, target) }},
	}
	for _, s := range steps {
		n, err := s.copy()
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", s.name, err)
		}
		log.Info("copied table", zap.String("table", s.name), zap.Int64("rows", n))
	}

	log.Info("data copy completed")
	return nil
}

func copyTable[T any](source, target *gorm.DB) (int64, error) {
	var copied int64
	var batch []T
	res := source.Unscoped().FindInBatches(&batch, copyBatchSize, func(_ *gorm.DB, _ int) error {
		err := target.Session(&gorm.Session{SkipHooks: true}).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&batch).Error
		if err != nil {
			return err
		}
		copied += int64(len(batch))
		return nil
	})
	return copied, res.Error
}
