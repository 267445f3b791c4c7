package repositories

import (
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"gorm.io/gorm"
)

// EnvironmentRepository handles database operations for environments
type EnvironmentRepository struct {
	db *gorm.DB
}

// NewEnvironmentRepository creates a new environment repository instance
func NewEnvironmentRepository(db *gorm.DB) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

// FindByID retrieves an environment by its ID
func (r *EnvironmentRepository) FindByID(id string) (models.Environment, error) {
	var environment models.Environment
	result := r.db.First(&environment, "id = ?", id)
	return environment, result.Error
}

// FindPage retrieves environments, optionally for a single project
func (r *EnvironmentRepository) FindPage(projectID string, page dto.PageRequest) ([]models.Environment, int64, error) {
	var environments []models.Environment
	var total int64

	db := r.db.Model(&models.Environment{})
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("created_at, id").Limit(page.PageSize).Offset(page.Offset()).Find(&environments).Error
	return environments, total, err
}

// Create inserts a new environment into the database
func (r *EnvironmentRepository) Create(environment *models.Environment) error {
	return r.db.Create(environment).Error
}

// Update modifies an existing environment
func (r *EnvironmentRepository) Update(environment *models.Environment) error {
	return r.db.Save(environment).Error
}

// ExistsByNameAndProject checks if an environment with the given name exists in a project
func (r *EnvironmentRepository) ExistsByNameAndProject(name, projectID, exceptID string) (bool, error) {
	var count int64
	db := r.db.Model(&models.Environment{}).Where("name = ? AND project_id = ?", name, projectID)
	if exceptID != "" {
		db = db.Where("id <> ?", exceptID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Delete removes an environment and its materials (soft delete)
func (r *EnvironmentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("environment_id = ?", id).Delete(&models.Material{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Environment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
