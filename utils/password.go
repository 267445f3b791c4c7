package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789@#%+=-"

// GenerateSecurePassword creates a random password of the specified length
// (at least 12), without look-alike characters.
func GenerateSecurePassword(length int) (string, error) {
	if length < 12 {
		length = 12
	}

	limit := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}
