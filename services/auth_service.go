package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/config"
	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserFinder is the user lookup the auth service depends on
type UserFinder interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
}

// AuthService issues and validates access/refresh token pairs
type AuthService struct {
	users UserFinder
	cfg   config.JWTConfig
	now   func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserFinder, cfg config.JWTConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg, now: time.Now}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(req dto.LoginRequest) (dto.TokenPair, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return dto.TokenPair{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return dto.TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.TokenPair{}, ErrInvalidCredentials
	}

	access, err := s.GenerateToken(user, dto.TokenTypeAccess)
	if err != nil {
		return dto.TokenPair{}, err
	}
	refresh, err := s.GenerateToken(user, dto.TokenTypeRefresh)
	if err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(refreshToken string) (dto.AccessToken, error) {
	claims, err := s.ValidateToken(refreshToken, dto.TokenTypeRefresh)
	if err != nil {
		return dto.AccessToken{}, err
	}
	user, err := s.users.FindByID(claims.UserID)
	if err != nil || !user.IsActive {
		return dto.AccessToken{}, ErrInvalidToken
	}
	access, err := s.GenerateToken(user, dto.TokenTypeAccess)
	if err != nil {
		return dto.AccessToken{}, err
	}
	return dto.AccessToken{Access: access}, nil
}

// GenerateToken signs a token of the given type for user
func (s *AuthService) GenerateToken(user models.User, tokenType string) (string, error) {
	if s.cfg.Secret == "" {
		return "", errors.New("jwt secret not configured")
	}

	ttl := s.cfg.AccessTokenExpire
	if tokenType == dto.TokenTypeRefresh {
		ttl = s.cfg.RefreshTokenExpire
	}
	now := s.now()

	claims := dto.TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a JWT token of the expected type and returns its claims
func (s *AuthService) ValidateToken(tokenString, tokenType string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
