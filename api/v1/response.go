package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/middleware"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{"detail": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}

// actorFrom reads the identity stored by AuthMiddleware
func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		UserID: c.GetString(middleware.ContextUserID),
		Email:  c.GetString(middleware.ContextEmail),
		Role:   c.GetString(middleware.ContextRole),
	}
}

// pageRequest parses ?page= and ?page_size=
func pageRequest(c *gin.Context, defaultSize int) dto.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return dto.PageRequest{Page: page, PageSize: size}
}

// newPage wraps one page of results with absolute next/previous links
func newPage[T any](c *gin.Context, results []T, total int64, req dto.PageRequest) dto.Page[T] {
	if results == nil {
		results = []T{}
	}
	page := dto.Page[T]{Count: total, Results: results}
	if int64(req.Page*req.PageSize) < total {
		page.Next = pageURL(c, req.Page+1)
	}
	if req.Page > 1 {
		page.Previous = pageURL(c, req.Page-1)
	}
	return page
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	u.Scheme = "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}
	u.Host = c.Request.Host
	s := u.String()
	return &s
}

// bindOptionalJSON binds the body when one was sent
func bindOptionalJSON(c *gin.Context, v any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(v)
}
