package authx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "org/earth-observation",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})

	info, err := InspectToken(token)
	require.NoError(t, err)
	require.Equal(t, "org/earth-observation", info.Subject)
	require.True(t, info.ExpiresAt.Equal(expiry))
	require.False(t, info.Expired(time.Now()))
	require.True(t, info.Expired(expiry.Add(time.Second)))
}

func TestInspectTokenNoExpiry(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "svc"})

	info, err := InspectToken(token)
	require.NoError(t, err)
	require.True(t, info.ExpiresAt.IsZero())
	require.False(t, info.Expired(time.Now()))
}

func TestInspectTokenMalformed(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformedToken)
}
