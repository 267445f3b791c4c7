package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	s, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)
	return s
}

func TestAccessExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	session, err := NewSession(&MemoryStore{})
	require.NoError(t, err)

	assert.True(t, session.AccessExpired(now), "no token")

	require.NoError(t, session.Set(Tokens{Access: signedToken(t, now.Add(time.Minute)), Refresh: "r"}))
	assert.False(t, session.AccessExpired(now))
	assert.True(t, session.AccessExpired(now.Add(2*time.Minute)))

	require.NoError(t, session.SetAccess("not-a-jwt"))
	assert.True(t, session.AccessExpired(now))
}

func TestFileStore(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "nested", "tokens.json")}

	empty, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Tokens{}, empty)

	require.NoError(t, store.Save(Tokens{Access: "a", Refresh: "r"}))
	session, err := NewSession(store)
	require.NoError(t, err)
	assert.Equal(t, Tokens{Access: "a", Refresh: "r"}, session.Tokens())

	require.NoError(t, session.Clear())
	require.NoError(t, session.Clear(), "clearing twice is fine")
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Tokens{}, loaded)
}
