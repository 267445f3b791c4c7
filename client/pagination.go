package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Page is one page of a paginated listing
type Page[T any] struct {
	Count    int
	Next     string
	Previous string
	Results  []T
}

// HasNext reports whether another page follows
func (p Page[T]) HasNext() bool { return p.Next != "" }

func fetchPage[W any, D any](ctx context.Context, c *Client, path string, query url.Values, page int, fn func(W) D) (Page[D], error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var w wirePage[W]
	if err := c.do(ctx, http.MethodGet, path, q, nil, &w); err != nil {
		return Page[D]{}, err
	}
	return Page[D]{
		Count:    w.Count,
		Next:     deref(w.Next),
		Previous: deref(w.Previous),
		Results:  mapAll(w.Results, fn),
	}, nil
}

// collect follows next links from the first page until exhausted and
// concatenates the results. The total must match the count announced by the
// first page.
func collect[W any, D any](ctx context.Context, c *Client, path string, query url.Values, fn func(W) D) ([]D, error) {
	var w wirePage[W]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &w); err != nil {
		return nil, err
	}
	count := w.Count
	out := mapAll(w.Results, fn)
	seen := map[string]bool{}

	for w.Next != nil && *w.Next != "" {
		next := *w.Next
		if seen[next] {
			return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("pagination loop at %s", next)}
		}
		seen[next] = true

		w = wirePage[W]{}
		if err := c.do(ctx, http.MethodGet, next, nil, nil, &w); err != nil {
			return nil, err
		}
		out = append(out, mapAll(w.Results, fn)...)
	}
	if len(out) != count {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("pagination returned %d of %d items", len(out), count)}
	}
	return out, nil
}
