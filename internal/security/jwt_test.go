package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-32-characters!!!"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	v := NewTokenVerifier(testSecret)
	tokenString := signToken(t, testSecret, Claims{
		Email: "asha@example.com",
		Name:  "Asha",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	t.Run("wrong secret", func(t *testing.T) {
		tokenString := signToken(t, "another-secret", Claims{Email: "a@b.c"})
		_, err := v.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tokenString := signToken(t, testSecret, Claims{
			Email: "a@b.c",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		_, err := v.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("missing email claim", func(t *testing.T) {
		tokenString := signToken(t, testSecret, Claims{})
		_, err := v.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		assert.Error(t, err)
	})
}
