package repositories

import (
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterialRepository handles database operations for materials
type MaterialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository instance
func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *MaterialRepository) WithTx(tx *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: tx}
}

// FindPage retrieves materials filtered by environment and/or project
func (r *MaterialRepository) FindPage(filter dto.MaterialFilter) ([]models.Material, int64, error) {
	var materials []models.Material
	var total int64

	db := r.db.Model(&models.Material{})
	if filter.EnvironmentID != "" {
		db = db.Where("materiais.environment_id = ?", filter.EnvironmentID)
	}
	if filter.ProjectID != "" {
		db = db.Joins("JOIN ambientes ON ambientes.id = materiais.environment_id AND ambientes.deleted_at IS NULL").
			Where("ambientes.project_id = ?", filter.ProjectID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("materiais.created_at, materiais.id").
		Limit(filter.PageSize).Offset(filter.Offset()).
		Find(&materials).Error
	return materials, total, err
}

// FindByID retrieves a material by its ID
func (r *MaterialRepository) FindByID(id string) (models.Material, error) {
	var material models.Material
	result := r.db.First(&material, "id = ?", id)
	return material, result.Error
}

// LockByID retrieves a material with a row lock, inside a transaction
func (r *MaterialRepository) LockByID(id string) (models.Material, error) {
	var material models.Material
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&material, "id = ?", id)
	return material, result.Error
}

// Create inserts a new material
func (r *MaterialRepository) Create(material *models.Material) error {
	return r.db.Create(material).Error
}

// Update saves every column of the material
func (r *MaterialRepository) Update(material *models.Material) error {
	return r.db.Save(material).Error
}

// Delete soft deletes a material
func (r *MaterialRepository) Delete(id string) error {
	result := r.db.Delete(&models.Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts materials with the given status; empty counts all
func (r *MaterialRepository) CountByStatus(status string) (int64, error) {
	var count int64
	db := r.db.Model(&models.Material{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&count).Error
	return count, err
}
