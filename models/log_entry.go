package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogEntry is an append-only audit record
type LogEntry struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserEmail   string    `json:"usuario_email" gorm:"not null;index"`
	Action      string    `json:"acao" gorm:"type:varchar(32);not null"`
	ProjectName string    `json:"projeto_nome"`
	Reason      *string   `json:"motivo"`
	CreatedAt   time.Time `json:"data" gorm:"index"`
}

// TableName sets the table name for LogEntry model
func (LogEntry) TableName() string {
	return "logs"
}

// BeforeCreate assigns a UUID when none is set
func (l *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
