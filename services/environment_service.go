package services

import (
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"gorm.io/gorm"
)

// EnvironmentService handles business logic for environments
type EnvironmentService struct {
	environmentRepo *repositories.EnvironmentRepository
	projectRepo     *repositories.ProjectRepository
}

// NewEnvironmentService creates a new environment service instance
func NewEnvironmentService(db *gorm.DB) *EnvironmentService {
	return &EnvironmentService{
		environmentRepo: repositories.NewEnvironmentRepository(db),
		projectRepo:     repositories.NewProjectRepository(db),
	}
}

// ListEnvironments retrieves environments, optionally for a single project
func (s *EnvironmentService) ListEnvironments(projectID string, page dto.PageRequest) ([]models.Environment, int64, error) {
	return s.environmentRepo.FindPage(projectID, page)
}

// GetEnvironment retrieves a specific environment
func (s *EnvironmentService) GetEnvironment(id string) (models.Environment, error) {
	env, err := s.environmentRepo.FindByID(id)
	if err != nil {
		return models.Environment{}, notFound(err, "environment")
	}
	return env, nil
}

// CreateEnvironment creates an environment inside an existing project
func (s *EnvironmentService) CreateEnvironment(req dto.EnvironmentRequest) (models.Environment, error) {
	env := models.Environment{ProjectID: req.ProjectID}
	if err := s.apply(&env, req, ""); err != nil {
		return models.Environment{}, err
	}
	if err := s.environmentRepo.Create(&env); err != nil {
		return models.Environment{}, err
	}
	return env, nil
}

// UpdateEnvironment replaces the name and category of an environment. The
// owning project cannot change.
func (s *EnvironmentService) UpdateEnvironment(id string, req dto.EnvironmentRequest) (models.Environment, error) {
	env, err := s.environmentRepo.FindByID(id)
	if err != nil {
		return models.Environment{}, notFound(err, "environment")
	}
	if req.ProjectID != env.ProjectID {
		return models.Environment{}, validationf("an environment cannot move to another project")
	}
	if err := s.apply(&env, req, env.ID); err != nil {
		return models.Environment{}, err
	}
	if err := s.environmentRepo.Update(&env); err != nil {
		return models.Environment{}, err
	}
	return env, nil
}

// DeleteEnvironment removes an environment with its materials
func (s *EnvironmentService) DeleteEnvironment(id string) error {
	return notFound(s.environmentRepo.Delete(id), "environment")
}

func (s *EnvironmentService) apply(env *models.Environment, req dto.EnvironmentRequest, exceptID string) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return validationf("name is required")
	}
	category := strings.ToUpper(strings.TrimSpace(req.Category))
	switch category {
	case models.CategoryPrivateUnit, models.CategoryCommonArea, models.CategoryExternalArea:
	default:
		return validationf("invalid category %q", req.Category)
	}

	if _, err := s.projectRepo.FindByID(env.ProjectID); err != nil {
		return notFound(err, "project")
	}
	exists, err := s.environmentRepo.ExistsByNameAndProject(name, env.ProjectID, exceptID)
	if err != nil {
		return err
	}
	if exists {
		return conflictf("environment %q already exists in this project", name)
	}

	env.Name = name
	env.Category = category
	return nil
}
