package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is the finish specified for one item of an environment
type Material struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	EnvironmentID string         `json:"ambiente" gorm:"type:uuid;not null;index"`
	Item          string         `json:"item" gorm:"not null"`
	Description   string         `json:"descricao" gorm:"not null"`
	Status        string         `json:"status" gorm:"type:varchar(12);not null;default:'PENDENTE';index"`
	Reason        *string        `json:"motivo"`
	ApprovedBy    *string        `json:"aprovado_por"`
	ApprovedAt    *time.Time     `json:"data_aprovacao"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for Material model
func (Material) TableName() string {
	return "materiais"
}

// BeforeCreate assigns a UUID when none is set
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
