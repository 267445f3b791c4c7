package domain

import "time"

// ProjectType classifies a project.
type ProjectType string

const (
	ProjectResidential ProjectType = "RESIDENCIAL"
	ProjectCommercial  ProjectType = "COMERCIAL"
	ProjectIndustrial  ProjectType = "INDUSTRIAL"
)

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectResidential, ProjectCommercial, ProjectIndustrial:
		return true
	}
	return false
}

// EnvironmentCategory classifies an environment ("ambiente").
type EnvironmentCategory string

const (
	CategoryPrivateUnit  EnvironmentCategory = "UNIDADE_PRIVATIVA"
	CategoryCommonArea   EnvironmentCategory = "AREA_COMUM"
	CategoryExternalArea EnvironmentCategory = "AREA_EXTERNA"
)

// Valid reports whether c is one of the known categories.
func (c EnvironmentCategory) Valid() bool {
	switch c {
	case CategoryPrivateUnit, CategoryCommonArea, CategoryExternalArea:
		return true
	}
	return false
}

// Project is the display model of a project and its environment tree.
type Project struct {
	ID           string
	Name         string
	Type         ProjectType
	Responsible  string
	CreatedOn    time.Time
	DeliveryOn   time.Time
	Description  string
	Status       Status
	Environments []Environment
	Brands       []BrandMapping
	GeneralNotes string
}

// Environment is a room or area inside a project.
type Environment struct {
	ID        string
	ProjectID string
	Name      string
	Category  EnvironmentCategory
	Materials []Material
}

// Material is a specified finish for one item of an environment.
type Material struct {
	ID            string
	EnvironmentID string
	Item          string
	Description   string
	Status        Status
	Reason        string
	ApprovedBy    string
	ApprovedAt    *time.Time
}

// BrandMapping lists the brands accepted for a material name.
type BrandMapping struct {
	ID        string
	Material  string
	Brands    []string
	ProjectID string
}

// LogEntry is a read-only audit record produced by the backend.
type LogEntry struct {
	ID          string
	UserEmail   string
	Action      string
	ProjectName string
	Reason      string
	At          time.Time
}

// User is an account administered through the dashboard.
type User struct {
	ID       string
	Email    string
	Name     string
	IsAdmin  bool
	IsActive bool
}

// DashboardStats holds the totals shown on the dashboard.
type DashboardStats struct {
	Projects          int64
	ProjectsPending   int64
	ProjectsApproved  int64
	ProjectsRejected  int64
	Materials         int64
	MaterialsPending  int64
	MaterialsApproved int64
	MaterialsRejected int64
}

// MonthlyStats holds per-status project counts for one month ("2006-01").
type MonthlyStats struct {
	Month    string
	Pending  int64
	Approved int64
	Rejected int64
}

// AllMaterials flattens the project tree in display order.
func (p *Project) AllMaterials() []Material {
	var out []Material
	for _, env := range p.Environments {
		out = append(out, env.Materials...)
	}
	return out
}

// FindMaterial returns a pointer into the tree for the material materialID
// under environment environmentID, or nil.
func (p *Project) FindMaterial(environmentID, materialID string) *Material {
	for i := range p.Environments {
		env := &p.Environments[i]
		if env.ID != environmentID {
			continue
		}
		for j := range env.Materials {
			if env.Materials[j].ID == materialID {
				return &env.Materials[j]
			}
		}
	}
	return nil
}

// FindEnvironment returns a pointer into the tree for environmentID, or nil.
func (p *Project) FindEnvironment(environmentID string) *Environment {
	for i := range p.Environments {
		if p.Environments[i].ID == environmentID {
			return &p.Environments[i]
		}
	}
	return nil
}
