package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

// EnvironmentInput creates or replaces an environment
type EnvironmentInput struct {
	Name      string                     `json:"nome"`
	Category  domain.EnvironmentCategory `json:"categoria"`
	ProjectID string                     `json:"projeto"`
}

func environmentPath(id string) string {
	return "/api/ambientes/" + url.PathEscape(id) + "/"
}

// ListEnvironments fetches every environment of a project; an empty
// projectID lists all environments
func (c *Client) ListEnvironments(ctx context.Context, projectID string) ([]domain.Environment, error) {
	q := url.Values{}
	if projectID != "" {
		q.Set("projeto", projectID)
	}
	return collect(ctx, c, "/api/ambientes/", q, wireEnvironment.toDomain)
}

// GetEnvironment fetches one environment
func (c *Client) GetEnvironment(ctx context.Context, id string) (domain.Environment, error) {
	var w wireEnvironment
	if err := c.do(ctx, http.MethodGet, environmentPath(id), nil, nil, &w); err != nil {
		return domain.Environment{}, err
	}
	return w.toDomain(), nil
}

// CreateEnvironment creates an environment
func (c *Client) CreateEnvironment(ctx context.Context, in EnvironmentInput) (domain.Environment, error) {
	var w wireEnvironment
	if err := c.do(ctx, http.MethodPost, "/api/ambientes/", nil, in, &w); err != nil {
		return domain.Environment{}, err
	}
	return w.toDomain(), nil
}

// UpdateEnvironment replaces an environment
func (c *Client) UpdateEnvironment(ctx context.Context, id string, in EnvironmentInput) (domain.Environment, error) {
	var w wireEnvironment
	if err := c.do(ctx, http.MethodPut, environmentPath(id), nil, in, &w); err != nil {
		return domain.Environment{}, err
	}
	return w.toDomain(), nil
}

// DeleteEnvironment removes an environment and its materials
func (c *Client) DeleteEnvironment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, environmentPath(id), nil, nil, nil)
}

type brandBody struct {
	Material  string  `json:"material"`
	Brands    string  `json:"marcas"`
	ProjectID *string `json:"projeto,omitempty"`
}

func newBrandBody(b domain.BrandMapping) brandBody {
	body := brandBody{Material: b.Material, Brands: strings.Join(b.Brands, ", ")}
	if b.ProjectID != "" {
		id := b.ProjectID
		body.ProjectID = &id
	}
	return body
}

// ListBrands fetches every brand mapping, optionally for one project
func (c *Client) ListBrands(ctx context.Context, projectID string) ([]domain.BrandMapping, error) {
	q := url.Values{}
	if projectID != "" {
		q.Set("projeto", projectID)
	}
	return collect(ctx, c, "/api/marcas-descricao/", q, wireBrand.toDomain)
}

// CreateBrand creates one brand mapping
func (c *Client) CreateBrand(ctx context.Context, b domain.BrandMapping) (domain.BrandMapping, error) {
	var w wireBrand
	if err := c.do(ctx, http.MethodPost, "/api/marcas-descricao/", nil, newBrandBody(b), &w); err != nil {
		return domain.BrandMapping{}, err
	}
	return w.toDomain(), nil
}

// SaveBrands upserts all rows of a project by material name
func (c *Client) SaveBrands(ctx context.Context, projectID string, rows []domain.BrandMapping) ([]domain.BrandMapping, error) {
	body := struct {
		ProjectID *string     `json:"projeto,omitempty"`
		Rows      []brandBody `json:"linhas"`
	}{Rows: make([]brandBody, 0, len(rows))}
	if projectID != "" {
		body.ProjectID = &projectID
	}
	for _, r := range rows {
		r.ProjectID = projectID
		body.Rows = append(body.Rows, newBrandBody(r))
	}

	var w []wireBrand
	if err := c.do(ctx, http.MethodPost, "/api/marcas-descricao/salvar/", nil, body, &w); err != nil {
		return nil, err
	}
	return mapAll(w, wireBrand.toDomain), nil
}

// UpdateBrands replaces the brand list of a mapping
func (c *Client) UpdateBrands(ctx context.Context, id string, brands []string) (domain.BrandMapping, error) {
	var w wireBrand
	body := map[string]string{"marcas": strings.Join(brands, ", ")}
	if err := c.do(ctx, http.MethodPatch, "/api/marcas-descricao/"+url.PathEscape(id)+"/", nil, body, &w); err != nil {
		return domain.BrandMapping{}, err
	}
	return w.toDomain(), nil
}

// DeleteBrand removes a brand mapping
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/marcas-descricao/"+url.PathEscape(id)+"/", nil, nil, nil)
}

// UserInput creates a user
type UserInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"nome,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
}

// UserPatch is a partial user update
type UserPatch struct {
	Name     *string `json:"nome,omitempty"`
	Password *string `json:"password,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
	IsActive *bool   `json:"ativo,omitempty"`
}

// ListUsers fetches every user (admin only)
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	return collect(ctx, c, "/api/usuarios-admin/", nil, wireUser.toDomain)
}

// CreateUser creates a user (admin only)
func (c *Client) CreateUser(ctx context.Context, in UserInput) (domain.User, error) {
	var w wireUser
	if err := c.do(ctx, http.MethodPost, "/api/usuarios-admin/", nil, in, &w); err != nil {
		return domain.User{}, err
	}
	return w.toDomain(), nil
}

// UpdateUser applies a partial update (admin only)
func (c *Client) UpdateUser(ctx context.Context, id string, patch UserPatch) (domain.User, error) {
	var w wireUser
	if err := c.do(ctx, http.MethodPatch, "/api/usuarios-admin/"+url.PathEscape(id)+"/", nil, patch, &w); err != nil {
		return domain.User{}, err
	}
	return w.toDomain(), nil
}

// DeleteUser removes a user (admin only)
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/usuarios-admin/"+url.PathEscape(id)+"/", nil, nil, nil)
}
