package services

import (
	"strings"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	db          *gorm.DB
	projectRepo *repositories.ProjectRepository
	logRepo     *repositories.LogRepository
	log         *zap.Logger
	now         func() time.Time
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB, log *zap.Logger) *ProjectService {
	return &ProjectService{
		db:          db,
		projectRepo: repositories.NewProjectRepository(db),
		logRepo:     repositories.NewLogRepository(db),
		log:         log.Named("projects"),
		now:         time.Now,
	}
}

// ListProjects retrieves one page of projects, optionally filtered by status
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	if filter.Status != "" {
		status, err := normalizeStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = status
	}
	return s.projectRepo.FindPage(filter)
}

// GetProject retrieves a project with its environments, materials and brands
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindTree(id)
	if err != nil {
		return models.Project{}, notFound(err, "project")
	}
	return project, nil
}

// CreateProject creates a new pending project and records it in the log
func (s *ProjectService) CreateProject(actor Actor, req dto.CreateProjectRequest) (models.Project, error) {
	projectType := strings.ToUpper(strings.TrimSpace(req.Type))
	if !validProjectType(projectType) {
		return models.Project{}, validationf("invalid project type %q", req.Type)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Responsible) == "" {
		return models.Project{}, validationf("name and responsible are required")
	}

	delivery, err := parseDate(req.DeliveryOn)
	if err != nil {
		return models.Project{}, err
	}
	created := s.today()
	if req.CreatedOn != "" {
		if created, err = parseDate(req.CreatedOn); err != nil {
			return models.Project{}, err
		}
	}
	if delivery.Before(created) {
		return models.Project{}, validationf("delivery date is before creation date")
	}

	project := models.Project{
		Name:         strings.TrimSpace(req.Name),
		Type:         projectType,
		Responsible:  strings.TrimSpace(req.Responsible),
		CreatedOn:    datatypes.Date(created),
		DeliveryOn:   datatypes.Date(delivery),
		Description:  req.Description,
		Status:       models.StatusPending,
		GeneralNotes: req.GeneralNotes,
		CreatedByID:  actor.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.WithTx(tx).Create(&project); err != nil {
			return err
		}
		return s.logRepo.WithTx(tx).Append(&models.LogEntry{
			UserEmail:   actor.Email,
			Action:      models.ActionProjectCreated,
			ProjectName: project.Name,
		})
	})
	if err != nil {
		return models.Project{}, err
	}

	s.log.Info("project created", zap.String("project_id", project.ID), zap.String("by", actor.Email))
	return project, nil
}

// UpdateProject applies a partial update. The status can only be moved back
// to PENDENTE, which is how a rejected project is resubmitted.
func (s *ProjectService) UpdateProject(actor Actor, id string, req dto.UpdateProjectRequest) (models.Project, error) {
	var project models.Project
	var resubmitted bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.projectRepo.WithTx(tx)
		var err error
		project, err = repo.LockByID(id)
		if err != nil {
			return notFound(err, "project")
		}
		if resubmitted, err = applyProjectUpdate(&project, req); err != nil {
			return err
		}

		if err := repo.Update(&project); err != nil {
			return err
		}
		if !resubmitted {
			return nil
		}
		return s.logRepo.WithTx(tx).Append(&models.LogEntry{
			UserEmail:   actor.Email,
			Action:      models.ActionProjectResubmitted,
			ProjectName: project.Name,
		})
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// applyProjectUpdate copies the set fields of req onto project and reports
// whether the change resubmits a decided project
func applyProjectUpdate(project *models.Project, req dto.UpdateProjectRequest) (bool, error) {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return false, validationf("name cannot be empty")
		}
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		t := strings.ToUpper(strings.TrimSpace(*req.Type))
		if !validProjectType(t) {
			return false, validationf("invalid project type %q", *req.Type)
		}
		project.Type = t
	}
	if req.Responsible != nil {
		if strings.TrimSpace(*req.Responsible) == "" {
			return false, validationf("responsible cannot be empty")
		}
		project.Responsible = strings.TrimSpace(*req.Responsible)
	}
	if req.DeliveryOn != nil {
		delivery, err := parseDate(*req.DeliveryOn)
		if err != nil {
			return false, err
		}
		project.DeliveryOn = datatypes.Date(delivery)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.GeneralNotes != nil {
		project.GeneralNotes = *req.GeneralNotes
	}

	if req.Status == nil {
		return false, nil
	}
	status, err := normalizeStatus(*req.Status)
	if err != nil {
		return false, err
	}
	if status != models.StatusPending {
		return false, validationf("status can only be set to %s; use the approve/reject actions", models.StatusPending)
	}
	resubmitted := project.Status != models.StatusPending
	project.Status = status
	return resubmitted, nil
}

// DecideProject approves or rejects a pending project
func (s *ProjectService) DecideProject(actor Actor, id string, approve bool, reason string) (models.Project, error) {
	var project models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.projectRepo.WithTx(tx)
		var err error
		project, err = repo.LockByID(id)
		if err != nil {
			return notFound(err, "project")
		}
		if project.Status != models.StatusPending {
			return conflictf("project is already %s", project.Status)
		}

		entry := models.LogEntry{UserEmail: actor.Email, ProjectName: project.Name}
		if approve {
			project.Status = models.StatusApproved
			entry.Action = models.ActionProjectApproved
		} else {
			project.Status = models.StatusRejected
			entry.Action = models.ActionProjectRejected
			if r := strings.TrimSpace(reason); r != "" {
				entry.Reason = strPtr(r)
			}
		}
		if err := repo.UpdateStatus(project.ID, project.Status); err != nil {
			return err
		}
		return s.logRepo.WithTx(tx).Append(&entry)
	})
	if err != nil {
		return models.Project{}, err
	}

	s.log.Info("project decided",
		zap.String("project_id", project.ID),
		zap.String("status", project.Status),
		zap.String("by", actor.Email),
	)
	return project, nil
}

func (s *ProjectService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validProjectType(t string) bool {
	switch t {
	case models.ProjectTypeResidential, models.ProjectTypeCommercial, models.ProjectTypeIndustrial:
		return true
	}
	return false
}

// normalizeStatus maps any accepted spelling to the stored status value
func normalizeStatus(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case models.StatusPending, "PENDING":
		return models.StatusPending, nil
	case models.StatusApproved, "APPROVED":
		return models.StatusApproved, nil
	case models.StatusRejected, "REJECTED":
		return models.StatusRejected, nil
	}
	return "", validationf("invalid status %q", s)
}
