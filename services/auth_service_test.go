package services

import (
	"testing"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUsers map[string]models.User

func (f fakeUsers) FindByEmail(email string) (models.User, error) {
	for _, u := range f {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f fakeUsers) FindByID(id string) (models.User, error) {
	u, ok := f[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newTestAuth(t *testing.T) (*AuthService, fakeUsers) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)

	users := fakeUsers{
		"u1": {ID: "u1", Email: "ana@obra.com", Password: string(hash), Role: models.RoleAdmin, IsActive: true},
		"u2": {ID: "u2", Email: "off@obra.com", Password: string(hash), Role: models.RoleUser, IsActive: false},
	}
	svc := NewAuthService(users, config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpire:  30 * time.Minute,
		RefreshTokenExpire: 24 * time.Hour,
		Issuer:             "specdash",
	})
	return svc, users
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuth(t)

	pair, err := svc.Login(dto.LoginRequest{Email: "ana@obra.com", Password: "s3cret!"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := svc.ValidateToken(pair.Access, dto.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = svc.ValidateToken(pair.Access, dto.TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "an access token is not a refresh token")

	_, err = svc.Login(dto.LoginRequest{Email: "ana@obra.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginRequest{Email: "off@obra.com", Password: "s3cret!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "inactive users cannot log in")

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@obra.com", Password: "s3cret!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, users := newTestAuth(t)

	pair, err := svc.Login(dto.LoginRequest{Email: "ana@obra.com", Password: "s3cret!"})
	require.NoError(t, err)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	_, err = svc.ValidateToken(access.Access, dto.TokenTypeAccess)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	u := users["u1"]
	u.IsActive = false
	users["u1"] = u
	_, err = svc.Refresh(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "a deactivated user cannot refresh")
}

func TestValidateTokenExpired(t *testing.T) {
	svc, users := newTestAuth(t)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken(users["u1"], dto.TokenTypeAccess)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(31 * time.Minute) }
	_, err = svc.ValidateToken(token, dto.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc, users := newTestAuth(t)
	token, err := svc.GenerateToken(users["u1"], dto.TokenTypeAccess)
	require.NoError(t, err)

	other := NewAuthService(users, config.JWTConfig{Secret: "other", AccessTokenExpire: time.Minute})
	_, err = other.ValidateToken(token, dto.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
