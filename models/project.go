package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a specification project
type Project struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string         `json:"nome" gorm:"not null"`
	Type         string         `json:"tipo" gorm:"type:varchar(20);not null"`
	Responsible  string         `json:"responsavel" gorm:"not null;index"`
	CreatedOn    datatypes.Date `json:"data_criacao"`
	DeliveryOn   datatypes.Date `json:"data_entrega"`
	Description  string         `json:"descricao" gorm:"default:null"`
	Status       string         `json:"status" gorm:"type:varchar(12);not null;default:'PENDENTE';index"`
	GeneralNotes string         `json:"observacoes_gerais" gorm:"default:null"`
	CreatedByID  string         `json:"-" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Environments []Environment  `json:"ambientes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Brands       []BrandMapping `json:"marcas,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}

// BeforeCreate assigns a UUID when none is set
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
