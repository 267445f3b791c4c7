package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandMapping lists the accepted brands for a material name.
// Material is a plain name, not a reference to a Material row.
type BrandMapping struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Material  string    `json:"material" gorm:"not null;index"`
	Brands    string    `json:"marcas" gorm:"not null"`
	ProjectID *string   `json:"projeto" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for BrandMapping model
func (BrandMapping) TableName() string {
	return "marcas_descricao"
}

// BeforeCreate assigns a UUID when none is set
func (b *BrandMapping) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
