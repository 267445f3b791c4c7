package repositories

import (
	"errors"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"gorm.io/gorm"
)

// BrandRepository handles database operations for brand mappings
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository instance
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// FindPage retrieves brand mappings, optionally for a single project
func (r *BrandRepository) FindPage(projectID string, page dto.PageRequest) ([]models.BrandMapping, int64, error) {
	var brands []models.BrandMapping
	var total int64

	db := r.db.Model(&models.BrandMapping{})
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("material, id").Limit(page.PageSize).Offset(page.Offset()).Find(&brands).Error
	return brands, total, err
}

// FindByID retrieves a brand mapping by its ID
func (r *BrandRepository) FindByID(id string) (models.BrandMapping, error) {
	var brand models.BrandMapping
	result := r.db.First(&brand, "id = ?", id)
	return brand, result.Error
}

// Create inserts a new brand mapping
func (r *BrandRepository) Create(brand *models.BrandMapping) error {
	return r.db.Create(brand).Error
}

// Update saves a brand mapping
func (r *BrandRepository) Update(brand *models.BrandMapping) error {
	return r.db.Save(brand).Error
}

// Delete removes a brand mapping
func (r *BrandRepository) Delete(id string) error {
	result := r.db.Delete(&models.BrandMapping{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert writes every row keyed by (project, material name) in one transaction
func (r *BrandRepository) Upsert(projectID *string, rows []models.BrandMapping) ([]models.BrandMapping, error) {
	saved := make([]models.BrandMapping, 0, len(rows))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			var existing models.BrandMapping
			q := tx.Where("material = ?", row.Material)
			if projectID == nil {
				q = q.Where("project_id IS NULL")
			} else {
				q = q.Where("project_id = ?", *projectID)
			}
			err := q.First(&existing).Error
			switch {
			case err == nil:
				existing.Brands = row.Brands
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				saved = append(saved, existing)
			case errors.Is(err, gorm.ErrRecordNotFound):
				row.ProjectID = projectID
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				saved = append(saved, row)
			default:
				return err
			}
		}
		return nil
	})
	return saved, err
}
