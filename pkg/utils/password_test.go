package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverPlaintext(t *testing.T) {
	h := HashPassword("secret123")
	require.NotEmpty(t, h)
	assert.NotEqual(t, "secret123", h)
}

func TestCheckPassword(t *testing.T) {
	h := HashPassword("secret123")
	assert.True(t, CheckPassword("secret123", h))
	assert.False(t, CheckPassword("wrong", h))
	assert.False(t, CheckPassword("secret123", "not-a-hash"))
}

func TestHashPassword_Salted(t *testing.T) {
	// 同一口令两次哈希必须不同（盐）
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret123"))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}
