package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeValidator struct {
	claims *dto.TokenClaims
}

func (f fakeValidator) ValidateToken(token, tokenType string) (*dto.TokenClaims, error) {
	if token != "good" || tokenType != dto.TokenTypeAccess {
		return nil, errors.New("invalid")
	}
	return f.claims, nil
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()))
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserID), "email": c.GetString(ContextEmail)})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	v := fakeValidator{claims: &dto.TokenClaims{UserID: "u1", Email: "a@b.com", Role: "user"}}
	r := newRouter(AuthMiddleware(v))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user":"u1"`)
			} else {
				assert.Contains(t, w.Body.String(), `"detail"`)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	user := fakeValidator{claims: &dto.TokenClaims{UserID: "u1", Role: "user"}}
	admin := fakeValidator{claims: &dto.TokenClaims{UserID: "u2", Role: "admin"}}

	for name, tc := range map[string]struct {
		v    TokenValidator
		want int
	}{
		"regular user": {user, http.StatusForbidden},
		"admin":        {admin, http.StatusOK},
	} {
		t.Run(name, func(t *testing.T) {
			r := newRouter(AuthMiddleware(tc.v), AdminMiddleware())
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer good")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
