package domain

import "strings"

// Aggregate derives a project's status from its materials. While any material
// is pending the result is pending and settled is false. Once none are pending,
// a single rejection rejects the whole project; otherwise it is approved.
// A project without materials is settled and approved.
func Aggregate(materials []Material) (status Status, settled bool) {
	var rejected int
	for _, m := range materials {
		switch m.Status {
		case StatusPending:
			return StatusPending, false
		case StatusRejected:
			rejected++
		}
	}
	if rejected > 0 {
		return StatusRejected, true
	}
	return StatusApproved, true
}

// FilterProjects keeps the projects whose name or responsible party contains
// query, ignoring case. An empty query returns projects unchanged.
func FilterProjects(projects []Project, query string) []Project {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Responsible), q) {
			out = append(out, p)
		}
	}
	return out
}

// Paginate returns the 1-based page of items and the total number of pages.
// Pages past the end are empty.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	pages := len(items) / size
	if len(items)%size != 0 {
		pages++
	}
	if page > pages {
		return []T{}, pages
	}
	start := (page - 1) * size
	end := len(items)
	if end-start > size {
		end = start + size
	}
	return items[start:end], pages
}
