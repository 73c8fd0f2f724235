package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTer_RoundTrip(t *testing.T) {
	j := NewJWTer("secret", "contacts-admin", time.Hour)

	tok, err := j.Issue("ops", RoleAdmin)
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", c.Operator())
	assert.Equal(t, RoleAdmin, c.Role)
	assert.NotEmpty(t, c.ID)
}

func TestJWTer_Rejects(t *testing.T) {
	j := NewJWTer("secret", "contacts-admin", time.Hour)
	good, err := j.Issue("ops", RoleAdmin)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTer("other", j.Issuer, time.Hour).Parse(good)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewJWTer("secret", "someone-else", time.Hour).Parse(good)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		later := NewJWTer("secret", j.Issuer, time.Hour)
		later.now = func() time.Time { return time.Now().Add(time.Hour + 2*leeway) }
		_, err := later.Parse(good)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("within leeway", func(t *testing.T) {
		later := NewJWTer("secret", j.Issuer, time.Hour)
		later.now = func() time.Time { return time.Now().Add(time.Hour + leeway/2) }
		_, err := later.Parse(good)
		assert.NoError(t, err)
	})

	t.Run("other alg", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, OperatorClaims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    j.Issuer,
				Subject:   "ops",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(j.Secret)
		require.NoError(t, err)
		_, err = j.Parse(tok)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := NewJWTer("", "x", time.Minute).Issue("ops", RoleAdmin)
		assert.ErrorIs(t, err, ErrEmptySecret)
		_, err = NewJWTer("", "x", time.Minute).Parse(good)
		assert.ErrorIs(t, err, ErrEmptySecret)
	})
}
