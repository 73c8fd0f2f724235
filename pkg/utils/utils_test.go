package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hashed)
	assert.True(t, CheckPassword("rahasia", hashed))
	assert.False(t, CheckPassword("salah", hashed))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_GarbageDigest(t *testing.T) {
	assert.False(t, CheckPassword("pw", "not-a-bcrypt-digest"))
}

func TestNewIDAndToken(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewID())
	assert.NotEqual(t, NewToken(), NewToken())
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 100)
	hashed, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(long, hashed))
}
