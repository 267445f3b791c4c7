package repositories

import (
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// FindPage retrieves one page of projects, optionally filtered by status
func (r *ProjectRepository) FindPage(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := r.db.Model(&models.Project{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	// Count total records (dengan filter yang sama)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at desc").Order("id").
		Limit(filter.PageSize).Offset(filter.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, totalCount, nil
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// LockByID loads a project with a row lock held until the transaction ends
func (r *ProjectRepository) LockByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, "id = ?", id)
	return project, result.Error
}

// FindTree loads a project with its environments, their materials and the
// brand rows, each level in creation order
func (r *ProjectRepository) FindTree(id string) (models.Project, error) {
	var project models.Project
	result := r.db.
		Preload("Environments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Preload("Environments.Materials", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Preload("Brands", func(db *gorm.DB) *gorm.DB { return db.Order("material") }).
		First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// UpdateStatus sets only the status column
func (r *ProjectRepository) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts projects with the given status; empty counts all
func (r *ProjectRepository) CountByStatus(status string) (int64, error) {
	var count int64
	db := r.db.Model(&models.Project{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&count).Error
	return count, err
}

// StatusSince returns the status and creation time of every project created
// at or after since
func (r *ProjectRepository) StatusSince(since time.Time) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Select("id", "status", "created_at").
		Where("created_at >= ?", since).
		Find(&projects).Error
	return projects, err
}
