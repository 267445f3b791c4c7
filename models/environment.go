package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Environment represents an "ambiente" (room or area) of a project
type Environment struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"nome" gorm:"not null"`
	Category  string         `json:"categoria" gorm:"type:varchar(20);not null"`
	ProjectID string         `json:"projeto" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Materials []Material `json:"materiais,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Environment model
func (Environment) TableName() string {
	return "ambientes"
}

// BeforeCreate assigns a UUID when none is set
func (e *Environment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
