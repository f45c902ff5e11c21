package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	t.Run("round trip preserves claims", func(t *testing.T) {
		token, err := svc.Generate(42, authorization.RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, authorization.RoleAdmin, claims.Role)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := svc.Generate(1, authorization.RoleUser)
		require.NoError(t, err)

		other := NewJWTService("another-secret", 60)
		claims, err := other.Verify(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		claims, err := svc.Verify("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		now := time.Now().UTC()
		claims := &Claims{
			UserID: 7,
			Role:   authorization.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		parsed, err := svc.Verify(signed)
		assert.Error(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("unexpected signing method is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		parsed, err := svc.Verify(signed)
		assert.Error(t, err)
		assert.Nil(t, parsed)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.NoError(t, hasher.Verify("correct horse battery staple", hash))
		assert.Error(t, hasher.Verify("wrong password", hash))
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		h := NewBcryptPasswordHasher(100)
		hash, err := h.Hash("password123")
		require.NoError(t, err)
		assert.NoError(t, h.Verify("password123", hash))
	})
}
