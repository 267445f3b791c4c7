package services

import (
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"gorm.io/gorm"
)

// LogService reads the activity log
type LogService struct {
	logRepo *repositories.LogRepository
}

// NewLogService creates a new log service instance
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{logRepo: repositories.NewLogRepository(db)}
}

// ListLogs returns a page of log entries, newest first
func (s *LogService) ListLogs(page dto.PageRequest) ([]models.LogEntry, int64, error) {
	return s.logRepo.FindPage(page)
}

// AllLogs returns the whole log, newest first
func (s *LogService) AllLogs() ([]models.LogEntry, error) {
	return s.logRepo.FindAll()
}
