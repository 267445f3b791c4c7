package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("project %w", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: name is required", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: material is already APROVADO", services.ErrConflict), http.StatusConflict},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrInvalidToken, http.StatusUnauthorized},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Contains(t, body, "detail")
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, body["detail"], "connection reset")
			}
		})
	}
}

func paginate(t *testing.T, target string, total int64) dto.Page[int] {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	req := pageRequest(c, 20)
	return newPage(c, []int{1, 2}, total, req)
}

func TestNewPageLinks(t *testing.T) {
	page := paginate(t, "http://example.com/api/projetos/?status=PENDENTE&page=2&page_size=2", 5)
	assert.EqualValues(t, 5, page.Count)
	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://example.com/api/projetos/?page=3&page_size=2&status=PENDENTE", *page.Next)
	assert.Equal(t, "http://example.com/api/projetos/?page=1&page_size=2&status=PENDENTE", *page.Previous)

	last := paginate(t, "http://example.com/api/projetos/?page=3&page_size=2", 5)
	assert.Nil(t, last.Next)
	assert.NotNil(t, last.Previous)

	first := paginate(t, "http://example.com/api/logs/", 2)
	assert.Nil(t, first.Next)
	assert.Nil(t, first.Previous)
}

func TestPageRequestBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/api/logs/?page=-3&page_size=1000", nil)
	req := pageRequest(c, 20)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, maxPageSize, req.PageSize)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/logs/?page_size=abc", nil)
	assert.Equal(t, 20, pageRequest(c, 20).PageSize)
}

func TestEmptyResultsEncodeAsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/materiais/", nil)

	page := newPage[int](c, nil, 0, pageRequest(c, 20))
	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, string(raw))
}
