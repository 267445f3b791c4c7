package repositories

import (
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"gorm.io/gorm"
)

// LogRepository appends and reads audit log entries
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository instance
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LogRepository) WithTx(tx *gorm.DB) *LogRepository {
	return &LogRepository{db: tx}
}

// Append inserts a log entry
func (r *LogRepository) Append(entry *models.LogEntry) error {
	return r.db.Create(entry).Error
}

// FindPage returns log entries, newest first
func (r *LogRepository) FindPage(page dto.PageRequest) ([]models.LogEntry, int64, error) {
	var entries []models.LogEntry
	var total int64
	if err := r.db.Model(&models.LogEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at desc, id").Limit(page.PageSize).Offset(page.Offset()).Find(&entries).Error
	return entries, total, err
}

// FindAll returns every log entry, newest first
func (r *LogRepository) FindAll() ([]models.LogEntry, error) {
	var entries []models.LogEntry
	err := r.db.Order("created_at desc, id").Find(&entries).Error
	return entries, err
}
