// Package authx inspects Lunaris API keys, which are JWTs issued by the
// platform. The SDK never verifies signatures (that is the server's job); it
// only reads claims to give callers early, friendly feedback, e.g. warning
// about an expired key before the first RPC fails.
package authx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned for tokens that are not parseable JWTs.
var ErrMalformedToken = errors.New("malformed API key")

// TokenInfo is the subset of API key claims the SDK cares about.
type TokenInfo struct {
	// Subject identifies the key owner.
	Subject string
	// ExpiresAt is the key expiry; zero when the key does not expire.
	ExpiresAt time.Time
}

// Expired reports whether the key was expired at the given instant.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}

// InspectToken reads the claims of an API key without verifying it.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
