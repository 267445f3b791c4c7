package services

import (
	"strings"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaterialService handles material CRUD and per-material decisions
type MaterialService struct {
	db              *gorm.DB
	materialRepo    *repositories.MaterialRepository
	environmentRepo *repositories.EnvironmentRepository
	logRepo         *repositories.LogRepository
	log             *zap.Logger
	now             func() time.Time
}

// NewMaterialService creates a new material service instance
func NewMaterialService(db *gorm.DB, log *zap.Logger) *MaterialService {
	return &MaterialService{
		db:              db,
		materialRepo:    repositories.NewMaterialRepository(db),
		environmentRepo: repositories.NewEnvironmentRepository(db),
		logRepo:         repositories.NewLogRepository(db),
		log:             log.Named("materials"),
		now:             time.Now,
	}
}

// ListMaterials retrieves a page of materials
func (s *MaterialService) ListMaterials(filter dto.MaterialFilter) ([]models.Material, int64, error) {
	return s.materialRepo.FindPage(filter)
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(id string) (models.Material, error) {
	material, err := s.materialRepo.FindByID(id)
	if err != nil {
		return models.Material{}, notFound(err, "material")
	}
	return material, nil
}

// CreateMaterial creates a pending material under an existing environment
func (s *MaterialService) CreateMaterial(req dto.CreateMaterialRequest) (models.Material, error) {
	if strings.TrimSpace(req.Item) == "" || strings.TrimSpace(req.Description) == "" {
		return models.Material{}, validationf("item and description are required")
	}
	if _, err := s.environmentRepo.FindByID(req.EnvironmentID); err != nil {
		return models.Material{}, notFound(err, "environment")
	}

	material := models.Material{
		EnvironmentID: req.EnvironmentID,
		Item:          strings.TrimSpace(req.Item),
		Description:   strings.TrimSpace(req.Description),
		Status:        models.StatusPending,
	}
	if err := s.materialRepo.Create(&material); err != nil {
		return models.Material{}, err
	}
	return material, nil
}

// UpdateMaterial applies a partial update. Moving the status back to
// PENDENTE clears the rejection reason and approval stamp; any other status
// change must go through DecideMaterial.
func (s *MaterialService) UpdateMaterial(actor Actor, id string, req dto.UpdateMaterialRequest) (models.Material, error) {
	var material models.Material
	var resubmitted bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.materialRepo.WithTx(tx)
		var err error
		material, err = repo.LockByID(id)
		if err != nil {
			return notFound(err, "material")
		}

		if req.Item != nil {
			if strings.TrimSpace(*req.Item) == "" {
				return validationf("item cannot be empty")
			}
			material.Item = strings.TrimSpace(*req.Item)
		}
		if req.Description != nil {
			if strings.TrimSpace(*req.Description) == "" {
				return validationf("description cannot be empty")
			}
			material.Description = strings.TrimSpace(*req.Description)
		}
		if req.Reason != nil {
			if r := strings.TrimSpace(*req.Reason); r != "" {
				material.Reason = strPtr(r)
			} else {
				material.Reason = nil
			}
		}
		if req.Status != nil {
			status, err := normalizeStatus(*req.Status)
			if err != nil {
				return err
			}
			if status != models.StatusPending {
				return validationf("status can only be set to %s; use the approve/reject actions", models.StatusPending)
			}
			resubmitted = material.Status != models.StatusPending
			material.Status = models.StatusPending
			material.Reason = nil
			material.ApprovedBy = nil
			material.ApprovedAt = nil
		}

		if err := repo.Update(&material); err != nil {
			return err
		}
		if !resubmitted {
			return nil
		}
		projectName, err := s.projectNameFor(tx, material.EnvironmentID)
		if err != nil {
			return err
		}
		return s.logRepo.WithTx(tx).Append(&models.LogEntry{
			UserEmail:   actor.Email,
			Action:      models.ActionMaterialResubmitted,
			ProjectName: projectName,
		})
	})
	if err != nil {
		return models.Material{}, err
	}
	return material, nil
}

// DeleteMaterial removes a material
func (s *MaterialService) DeleteMaterial(id string) error {
	return notFound(s.materialRepo.Delete(id), "material")
}

// DecideMaterial approves or rejects a pending material. Deciding a material
// that is no longer pending is a conflict.
func (s *MaterialService) DecideMaterial(actor Actor, id string, approve bool, reason string) (models.Material, error) {
	var material models.Material

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.materialRepo.WithTx(tx)
		var err error
		material, err = repo.LockByID(id)
		if err != nil {
			return notFound(err, "material")
		}
		if material.Status != models.StatusPending {
			return conflictf("material is already %s", material.Status)
		}

		now := s.now()
		entry := models.LogEntry{UserEmail: actor.Email}
		material.ApprovedBy = strPtr(actor.Email)
		if approve {
			material.Status = models.StatusApproved
			material.ApprovedAt = &now
			material.Reason = nil
			entry.Action = models.ActionMaterialApproved
		} else {
			r := strings.TrimSpace(reason)
			if r == "" {
				return validationf("a rejection reason is required")
			}
			material.Status = models.StatusRejected
			material.Reason = strPtr(r)
			entry.Action = models.ActionMaterialRejected
			entry.Reason = strPtr(r)
		}

		if err := repo.Update(&material); err != nil {
			return err
		}
		if entry.ProjectName, err = s.projectNameFor(tx, material.EnvironmentID); err != nil {
			return err
		}
		return s.logRepo.WithTx(tx).Append(&entry)
	})
	if err != nil {
		return models.Material{}, err
	}

	s.log.Info("material decided",
		zap.String("material_id", material.ID),
		zap.String("status", material.Status),
		zap.String("by", actor.Email),
	)
	return material, nil
}

func (s *MaterialService) projectNameFor(tx *gorm.DB, environmentID string) (string, error) {
	var name string
	err := tx.Model(&models.Project{}).
		Select("projects.name").
		Joins("JOIN ambientes ON ambientes.project_id = projects.id").
		Where("ambientes.id = ?", environmentID).
		Scan(&name).Error
	return name, err
}
