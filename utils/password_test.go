package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecurePassword(t *testing.T) {
	p, err := GenerateSecurePassword(4)
	require.NoError(t, err)
	assert.Len(t, p, 12)

	q, err := GenerateSecurePassword(20)
	require.NoError(t, err)
	assert.Len(t, q, 20)
	assert.NotEqual(t, p, q)

	for _, c := range q {
		assert.True(t, strings.ContainsRune(passwordAlphabet, c), "unexpected %q", c)
	}
	assert.NotContains(t, q, "l")
	assert.NotContains(t, q, "0")
}
