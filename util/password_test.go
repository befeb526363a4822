package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsDeterministicPerSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	first := HashPassword("admin123")
	second := HashPassword("admin123")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	// A different secret produces a different hash for the same input.
	SetJWTSecret("secret-b")
	assert.NotEqual(t, first, HashPassword("admin123"))
}

func TestVerifyPassword(t *testing.T) {
	SetJWTSecret("secret-a")
	stored := HashPassword("admin123")

	assert.True(t, VerifyPassword("admin123", stored))
	assert.False(t, VerifyPassword("wrong", stored))
	assert.False(t, VerifyPassword("", stored))
}

func TestGetJWTSecretByteReturnsCopy(t *testing.T) {
	SetJWTSecret("secret-a")
	b := GetJWTSecretByte()
	b[0] = 'x'
	assert.Equal(t, []byte("secret-a"), GetJWTSecretByte())
}
