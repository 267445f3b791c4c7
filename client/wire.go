package client

import (
	"strings"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

type wirePage[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type wireProject struct {
	ID           string            `json:"id"`
	Name         string            `json:"nome"`
	Type         string            `json:"tipo"`
	Responsible  string            `json:"responsavel"`
	CreatedOn    string            `json:"data_criacao"`
	DeliveryOn   string            `json:"data_entrega"`
	Description  string            `json:"descricao"`
	Status       string            `json:"status"`
	GeneralNotes string            `json:"observacoes_gerais"`
	Environments []wireEnvironment `json:"ambientes"`
	Brands       []wireBrand       `json:"marcas"`
}

type wireEnvironment struct {
	ID        string         `json:"id"`
	Name      string         `json:"nome"`
	Category  string         `json:"categoria"`
	ProjectID string         `json:"projeto"`
	Materials []wireMaterial `json:"materiais"`
}

type wireMaterial struct {
	ID            string     `json:"id"`
	EnvironmentID string     `json:"ambiente"`
	Item          string     `json:"item"`
	Description   string     `json:"descricao"`
	Status        string     `json:"status"`
	Reason        *string    `json:"motivo"`
	ApprovedBy    *string    `json:"aprovado_por"`
	ApprovedAt    *time.Time `json:"data_aprovacao"`
}

type wireBrand struct {
	ID        string  `json:"id"`
	Material  string  `json:"material"`
	Brands    string  `json:"marcas"`
	ProjectID *string `json:"projeto"`
}

type wireLog struct {
	ID          string    `json:"id"`
	UserEmail   string    `json:"usuario_email"`
	Action      string    `json:"acao"`
	ProjectName string    `json:"projeto_nome"`
	Reason      *string   `json:"motivo"`
	At          time.Time `json:"data"`
}

type wireUser struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     *string `json:"nome"`
	Role     string  `json:"role"`
	IsActive bool    `json:"ativo"`
}

type wireDashboard struct {
	TotalProjects     int64 `json:"total_projetos"`
	PendingProjects   int64 `json:"projetos_pendentes"`
	ApprovedProjects  int64 `json:"projetos_aprovados"`
	RejectedProjects  int64 `json:"projetos_reprovados"`
	TotalMaterials    int64 `json:"total_materiais"`
	PendingMaterials  int64 `json:"materiais_pendentes"`
	ApprovedMaterials int64 `json:"materiais_aprovados"`
	RejectedMaterials int64 `json:"materiais_reprovados"`
}

type wireMonthly struct {
	Month    string `json:"mes"`
	Pending  int64  `json:"pendentes"`
	Approved int64  `json:"aprovados"`
	Rejected int64  `json:"reprovados"`
}

type wireDraft struct {
	EnvironmentID string            `json:"ambiente"`
	Selections    map[string]string `json:"selecoes"`
}

// parseStatus maps unknown wire statuses to pending so that a new backend
// value never makes a material look settled.
func parseStatus(s string) domain.Status {
	st, err := domain.ParseStatus(s)
	if err != nil {
		return domain.StatusPending
	}
	return st
}

func parseWireDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (w wireProject) toDomain() domain.Project {
	p := domain.Project{
		ID:           w.ID,
		Name:         w.Name,
		Type:         domain.ProjectType(w.Type),
		Responsible:  w.Responsible,
		CreatedOn:    parseWireDate(w.CreatedOn),
		DeliveryOn:   parseWireDate(w.DeliveryOn),
		Description:  w.Description,
		Status:       parseStatus(w.Status),
		GeneralNotes: w.GeneralNotes,
	}
	for _, e := range w.Environments {
		p.Environments = append(p.Environments, e.toDomain())
	}
	for _, b := range w.Brands {
		p.Brands = append(p.Brands, b.toDomain())
	}
	return p
}

func (w wireEnvironment) toDomain() domain.Environment {
	e := domain.Environment{
		ID:        w.ID,
		ProjectID: w.ProjectID,
		Name:      w.Name,
		Category:  domain.EnvironmentCategory(w.Category),
	}
	for _, m := range w.Materials {
		e.Materials = append(e.Materials, m.toDomain())
	}
	return e
}

func (w wireMaterial) toDomain() domain.Material {
	return domain.Material{
		ID:            w.ID,
		EnvironmentID: w.EnvironmentID,
		Item:          w.Item,
		Description:   w.Description,
		Status:        parseStatus(w.Status),
		Reason:        deref(w.Reason),
		ApprovedBy:    deref(w.ApprovedBy),
		ApprovedAt:    w.ApprovedAt,
	}
}

func (w wireBrand) toDomain() domain.BrandMapping {
	b := domain.BrandMapping{ID: w.ID, Material: w.Material, ProjectID: deref(w.ProjectID)}
	for _, part := range strings.Split(w.Brands, ",") {
		if part = strings.TrimSpace(part); part != "" {
			b.Brands = append(b.Brands, part)
		}
	}
	return b
}

func (w wireLog) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:          w.ID,
		UserEmail:   w.UserEmail,
		Action:      w.Action,
		ProjectName: w.ProjectName,
		Reason:      deref(w.Reason),
		At:          w.At,
	}
}

func (w wireUser) toDomain() domain.User {
	return domain.User{
		ID:       w.ID,
		Email:    w.Email,
		Name:     deref(w.Name),
		IsAdmin:  w.Role == "admin",
		IsActive: w.IsActive,
	}
}

func (w wireDashboard) toDomain() domain.DashboardStats {
	return domain.DashboardStats{
		Projects:          w.TotalProjects,
		ProjectsPending:   w.PendingProjects,
		ProjectsApproved:  w.ApprovedProjects,
		ProjectsRejected:  w.RejectedProjects,
		Materials:         w.TotalMaterials,
		MaterialsPending:  w.PendingMaterials,
		MaterialsApproved: w.ApprovedMaterials,
		MaterialsRejected: w.RejectedMaterials,
	}
}

func (w wireMonthly) toDomain() domain.MonthlyStats {
	return domain.MonthlyStats{Month: w.Month, Pending: w.Pending, Approved: w.Approved, Rejected: w.Rejected}
}

func mapAll[W any, D any](in []W, fn func(W) D) []D {
	out := make([]D, 0, len(in))
	for _, w := range in {
		out = append(out, fn(w))
	}
	return out
}
