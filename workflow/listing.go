package workflow

import (
	"context"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

// DefaultListPageSize is the page size of the project list views
const DefaultListPageSize = 10

// ListAPI is the part of the API client the list views need
type ListAPI interface {
	ListAllProjects(ctx context.Context, status *domain.Status) ([]domain.Project, error)
}

// ListView is one page of a filtered project list
type ListView struct {
	Projects []domain.Project
	Page     int
	Pages    int
	Total    int
}

// Lister backs the pending/approved/rejected/all project lists
type Lister struct {
	api      ListAPI
	pageSize int
}

// NewLister creates a lister; a pageSize below 1 uses DefaultListPageSize
func NewLister(api ListAPI, pageSize int) *Lister {
	if pageSize < 1 {
		pageSize = DefaultListPageSize
	}
	return &Lister{api: api, pageSize: pageSize}
}

// ByStatus fetches every project with the given status; nil fetches all.
// Projects the backend returns with another status are dropped.
func (l *Lister) ByStatus(ctx context.Context, status *domain.Status) ([]domain.Project, error) {
	projects, err := l.api.ListAllProjects(ctx, status)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return projects, nil
	}
	out := projects[:0]
	for _, p := range projects {
		if p.Status == *status {
			out = append(out, p)
		}
	}
	return out, nil
}

// View fetches, filters by query and returns the requested page (1-based)
func (l *Lister) View(ctx context.Context, status *domain.Status, query string, page int) (ListView, error) {
	projects, err := l.ByStatus(ctx, status)
	if err != nil {
		return ListView{}, err
	}
	filtered := domain.FilterProjects(projects, query)
	items, pages := domain.Paginate(filtered, page, l.pageSize)
	if page < 1 {
		page = 1
	}
	return ListView{Projects: items, Page: page, Pages: pages, Total: len(filtered)}, nil
}
