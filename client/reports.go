package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

// ListLogs fetches one page of the activity log, newest first
func (c *Client) ListLogs(ctx context.Context, page int) (Page[domain.LogEntry], error) {
	return fetchPage(ctx, c, "/api/logs/", nil, page, wireLog.toDomain)
}

// ExportLogs downloads the activity log as an XLSX workbook
func (c *Client) ExportLogs(ctx context.Context) ([]byte, error) {
	var doc []byte
	if err := c.do(ctx, http.MethodGet, "/api/logs/exportar/", nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DashboardStats fetches the per-status totals
func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var w wireDashboard
	if err := c.do(ctx, http.MethodGet, "/api/stats/dashboard/", nil, nil, &w); err != nil {
		return domain.DashboardStats{}, err
	}
	return w.toDomain(), nil
}

// MonthlyStats fetches projects created per month over the last year
func (c *Client) MonthlyStats(ctx context.Context) ([]domain.MonthlyStats, error) {
	var w []wireMonthly
	if err := c.do(ctx, http.MethodGet, "/api/stats/mensais/", nil, nil, &w); err != nil {
		return nil, err
	}
	return mapAll(w, wireMonthly.toDomain), nil
}

func draftPath(environmentID string) string {
	return "/api/rascunhos/ambientes/" + url.PathEscape(environmentID) + "/"
}

// GetDraft returns the unsaved selections of an environment
func (c *Client) GetDraft(ctx context.Context, environmentID string) (map[string]string, error) {
	var w wireDraft
	if err := c.do(ctx, http.MethodGet, draftPath(environmentID), nil, nil, &w); err != nil {
		return nil, err
	}
	return w.Selections, nil
}

// SaveDraft replaces the unsaved selections of an environment
func (c *Client) SaveDraft(ctx context.Context, environmentID string, selections map[string]string) error {
	body := map[string]any{"selecoes": selections}
	return c.do(ctx, http.MethodPut, draftPath(environmentID), nil, body, nil)
}

// DeleteDraft discards the unsaved selections of an environment
func (c *Client) DeleteDraft(ctx context.Context, environmentID string) error {
	return c.do(ctx, http.MethodDelete, draftPath(environmentID), nil, nil, nil)
}
