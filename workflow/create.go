package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/client"
	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"go.uber.org/zap"
)

// SelectionAPI creates or patches the material chosen for an item
type SelectionAPI interface {
	CreateMaterial(ctx context.Context, in client.MaterialInput) (domain.Material, error)
	UpdateMaterial(ctx context.Context, id string, patch client.MaterialPatch) (domain.Material, error)
}

// SelectMaterial records description for item in env. The first time an
// item gets a value the material is created; afterwards its description is
// patched. env.Materials is updated with the server's copy.
func SelectMaterial(ctx context.Context, api SelectionAPI, env *domain.Environment, item, description string) (domain.Material, error) {
	item = strings.TrimSpace(item)
	description = strings.TrimSpace(description)
	if item == "" || description == "" {
		return domain.Material{}, errors.New("item and description are required")
	}
	if canonical, ok := domain.CanonicalItem(item); ok {
		item = canonical
	}

	for i := range env.Materials {
		if !strings.EqualFold(env.Materials[i].Item, item) {
			continue
		}
		if env.Materials[i].Description == description {
			return env.Materials[i], nil
		}
		m, err := api.UpdateMaterial(ctx, env.Materials[i].ID, client.MaterialPatch{Description: &description})
		if err != nil {
			return domain.Material{}, err
		}
		env.Materials[i] = m
		return m, nil
	}

	m, err := api.CreateMaterial(ctx, client.MaterialInput{
		EnvironmentID: env.ID,
		Item:          item,
		Description:   description,
	})
	if err != nil {
		return domain.Material{}, err
	}
	env.Materials = append(env.Materials, m)
	return m, nil
}

// CreateAPI is the part of the API client project creation needs
type CreateAPI interface {
	SelectionAPI
	CreateProject(ctx context.Context, in client.ProjectInput) (domain.Project, error)
	CreateEnvironment(ctx context.Context, in client.EnvironmentInput) (domain.Environment, error)
	DeleteEnvironment(ctx context.Context, id string) error
}

// EnvironmentPlan is an environment to create with its item selections
type EnvironmentPlan struct {
	Name       string
	Category   domain.EnvironmentCategory
	Selections []Selection
}

// Selection pairs an item with its specified description
type Selection struct {
	Item        string
	Description string
}

// ProjectPlan describes a new project and its environment tree
type ProjectPlan struct {
	Project      client.ProjectInput
	Environments []EnvironmentPlan

	// RollbackEnvironments deletes the environments created so far when a
	// later step fails. The project itself is kept.
	RollbackEnvironments bool
}

// Validate checks the required fields before anything is sent
func (p ProjectPlan) Validate() error {
	if strings.TrimSpace(p.Project.Name) == "" {
		return errors.New("project name is required")
	}
	if !p.Project.Type.Valid() {
		return fmt.Errorf("invalid project type %q", p.Project.Type)
	}
	if strings.TrimSpace(p.Project.Responsible) == "" {
		return errors.New("responsible is required")
	}
	if p.Project.DeliveryOn == "" {
		return errors.New("delivery date is required")
	}
	seen := make(map[string]bool, len(p.Environments))
	for _, env := range p.Environments {
		name := strings.TrimSpace(env.Name)
		if name == "" {
			return errors.New("environment name is required")
		}
		if !env.Category.Valid() {
			return fmt.Errorf("environment %q: invalid category %q", name, env.Category)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("environment %q appears more than once", name)
		}
		seen[key] = true
	}
	return nil
}

// CreateProject creates the project, then each environment and its
// materials, as one saga. The returned project holds what was created even
// when the saga failed part way.
func CreateProject(ctx context.Context, api CreateAPI, plan ProjectPlan, log *zap.Logger) (domain.Project, Report, error) {
	if err := plan.Validate(); err != nil {
		return domain.Project{}, Report{}, err
	}

	var project domain.Project
	saga := NewSaga(log)
	saga.Add("project "+plan.Project.Name, func(ctx context.Context) error {
		p, err := api.CreateProject(ctx, plan.Project)
		if err != nil {
			return err
		}
		project = p
		project.Environments = nil
		return nil
	})

	for _, envPlan := range plan.Environments {
		envPlan := envPlan
		var idx int
		step := Step{Name: "environment " + envPlan.Name}
		step.Run = func(ctx context.Context) error {
			env, err := api.CreateEnvironment(ctx, client.EnvironmentInput{
				Name:      strings.TrimSpace(envPlan.Name),
				Category:  envPlan.Category,
				ProjectID: project.ID,
			})
			if err != nil {
				return err
			}
			env.Materials = nil
			project.Environments = append(project.Environments, env)
			idx = len(project.Environments) - 1
			return nil
		}
		if plan.RollbackEnvironments {
			step.Compensate = func(ctx context.Context) error {
				return api.DeleteEnvironment(ctx, project.Environments[idx].ID)
			}
		}
		saga.AddStep(step)

		for _, sel := range envPlan.Selections {
			sel := sel
			saga.Add(fmt.Sprintf("material %s/%s", envPlan.Name, sel.Item), func(ctx context.Context) error {
				_, err := SelectMaterial(ctx, api, &project.Environments[idx], sel.Item, sel.Description)
				return err
			})
		}
	}

	report := saga.Run(ctx)
	if !report.OK() {
		return project, report, &SagaError{Report: report}
	}
	return project, report, nil
}
