package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

// ProjectInput is the body of a project creation
type ProjectInput struct {
	Name         string             `json:"nome"`
	Type         domain.ProjectType `json:"tipo"`
	Responsible  string             `json:"responsavel"`
	CreatedOn    string             `json:"data_criacao,omitempty"`
	DeliveryOn   string             `json:"data_entrega"`
	Description  string             `json:"descricao,omitempty"`
	GeneralNotes string             `json:"observacoes_gerais,omitempty"`
}

// NewProjectInput formats dates the way the API expects
func NewProjectInput(name string, typ domain.ProjectType, responsible string, delivery time.Time) ProjectInput {
	return ProjectInput{Name: name, Type: typ, Responsible: responsible, DeliveryOn: delivery.Format("2006-01-02")}
}

// ProjectPatch is a partial project update; nil fields are not sent
type ProjectPatch struct {
	Name         *string `json:"nome,omitempty"`
	Responsible  *string `json:"responsavel,omitempty"`
	DeliveryOn   *string `json:"data_entrega,omitempty"`
	Description  *string `json:"descricao,omitempty"`
	GeneralNotes *string `json:"observacoes_gerais,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func statusQuery(status *domain.Status) url.Values {
	q := url.Values{}
	if status != nil {
		q.Set("status", status.Wire())
	}
	return q
}

// ListProjects fetches one page of projects; a nil status lists all
func (c *Client) ListProjects(ctx context.Context, status *domain.Status, page int) (Page[domain.Project], error) {
	return fetchPage(ctx, c, "/api/projetos/", statusQuery(status), page, wireProject.toDomain)
}

// ListAllProjects fetches every page of projects with the given status
func (c *Client) ListAllProjects(ctx context.Context, status *domain.Status) ([]domain.Project, error) {
	return collect(ctx, c, "/api/projetos/", statusQuery(status), wireProject.toDomain)
}

// GetProject fetches a project with its environments, materials and brands
func (c *Client) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var w wireProject
	if err := c.do(ctx, http.MethodGet, "/api/projetos/"+url.PathEscape(id)+"/", nil, nil, &w); err != nil {
		return domain.Project{}, err
	}
	return w.toDomain(), nil
}

// CreateProject creates a pending project
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (domain.Project, error) {
	var w wireProject
	if err := c.do(ctx, http.MethodPost, "/api/projetos/", nil, in, &w); err != nil {
		return domain.Project{}, err
	}
	return w.toDomain(), nil
}

// UpdateProject applies a partial update
func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (domain.Project, error) {
	var w wireProject
	if err := c.do(ctx, http.MethodPatch, "/api/projetos/"+url.PathEscape(id)+"/", nil, patch, &w); err != nil {
		return domain.Project{}, err
	}
	return w.toDomain(), nil
}

// ResubmitProject moves a project back to pending
func (c *Client) ResubmitProject(ctx context.Context, id string) (domain.Project, error) {
	pending := domain.StatusPending.Wire()
	return c.UpdateProject(ctx, id, ProjectPatch{Status: &pending})
}

// ApproveProject approves a pending project
func (c *Client) ApproveProject(ctx context.Context, id string) (domain.Project, error) {
	var w wireProject
	if err := c.do(ctx, http.MethodPost, "/api/projetos/"+url.PathEscape(id)+"/aprovar/", nil, nil, &w); err != nil {
		return domain.Project{}, err
	}
	return w.toDomain(), nil
}

// RejectProject rejects a pending project
func (c *Client) RejectProject(ctx context.Context, id, reason string) (domain.Project, error) {
	var w wireProject
	body := map[string]string{"motivo": reason}
	if err := c.do(ctx, http.MethodPost, "/api/projetos/"+url.PathEscape(id)+"/reprovar/", nil, body, &w); err != nil {
		return domain.Project{}, err
	}
	return w.toDomain(), nil
}

// ProjectPDF downloads the PDF rendering of a project
func (c *Client) ProjectPDF(ctx context.Context, id string) ([]byte, error) {
	var doc []byte
	if err := c.do(ctx, http.MethodGet, "/api/projetos/"+url.PathEscape(id)+"/gerar-pdf/", nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
