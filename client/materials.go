package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

// MaterialQuery filters material listings
type MaterialQuery struct {
	EnvironmentID string
	ProjectID     string
}

func (q MaterialQuery) values() url.Values {
	v := url.Values{}
	if q.EnvironmentID != "" {
		v.Set("ambiente", q.EnvironmentID)
	}
	if q.ProjectID != "" {
		v.Set("projeto", q.ProjectID)
	}
	return v
}

// MaterialInput creates a material
type MaterialInput struct {
	EnvironmentID string `json:"ambiente"`
	Item          string `json:"item"`
	Description   string `json:"descricao"`
}

// MaterialPatch is a partial material update; nil fields are not sent
type MaterialPatch struct {
	Item        *string `json:"item,omitempty"`
	Description *string `json:"descricao,omitempty"`
	Status      *string `json:"status,omitempty"`
	Reason      *string `json:"motivo,omitempty"`
}

func materialPath(id string) string {
	return "/api/materiais/" + url.PathEscape(id) + "/"
}

// ListMaterials fetches one page of materials
func (c *Client) ListMaterials(ctx context.Context, q MaterialQuery, page int) (Page[domain.Material], error) {
	return fetchPage(ctx, c, "/api/materiais/", q.values(), page, wireMaterial.toDomain)
}

// ListAllMaterials fetches every page of materials matching q
func (c *Client) ListAllMaterials(ctx context.Context, q MaterialQuery) ([]domain.Material, error) {
	return collect(ctx, c, "/api/materiais/", q.values(), wireMaterial.toDomain)
}

// CreateMaterial creates a pending material
func (c *Client) CreateMaterial(ctx context.Context, in MaterialInput) (domain.Material, error) {
	var w wireMaterial
	if err := c.do(ctx, http.MethodPost, "/api/materiais/", nil, in, &w); err != nil {
		return domain.Material{}, err
	}
	return w.toDomain(), nil
}

// UpdateMaterial applies a partial update
func (c *Client) UpdateMaterial(ctx context.Context, id string, patch MaterialPatch) (domain.Material, error) {
	var w wireMaterial
	if err := c.do(ctx, http.MethodPatch, materialPath(id), nil, patch, &w); err != nil {
		return domain.Material{}, err
	}
	return w.toDomain(), nil
}

// DeleteMaterial removes a material
func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, materialPath(id), nil, nil, nil)
}

// ApproveMaterial approves a pending material
func (c *Client) ApproveMaterial(ctx context.Context, id string) (domain.Material, error) {
	var w wireMaterial
	if err := c.do(ctx, http.MethodPost, materialPath(id)+"aprovar/", nil, nil, &w); err != nil {
		return domain.Material{}, err
	}
	return w.toDomain(), nil
}

// RejectMaterial rejects a pending material with reason
func (c *Client) RejectMaterial(ctx context.Context, id, reason string) (domain.Material, error) {
	var w wireMaterial
	body := map[string]string{"motivo": reason}
	if err := c.do(ctx, http.MethodPost, materialPath(id)+"reprovar/", nil, body, &w); err != nil {
		return domain.Material{}, err
	}
	return w.toDomain(), nil
}
