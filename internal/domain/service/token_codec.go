package service

import (
	"errors"
	"time"

	"tasker/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the single error returned for every token decode
// failure. Bad signature, unknown algorithm, malformed structure, expiry
// and missing subject all collapse into this value so callers cannot
// probe which check rejected a token.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims defines the custom claims carried by a session token.
// Username rides in the registered "sub" claim; UserID is a private claim.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Identity reconstructs the authenticated principal from the claims.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{UserID: c.UserID, Username: c.Subject}
}

// TokenCodec defines the interface for issuing and validating session tokens.
// Tokens are self-contained: validity is determined solely by signature and
// expiry, with no server-side session storage.
type TokenCodec interface {
	// Issue creates a signed token for the given identity, expiring after
	// the configured TTL.
	Issue(identity entity.Identity) (string, error)

	// Decode verifies a token string and returns its claims, or
	// ErrTokenInvalid on any failure.
	Decode(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime, used by
	// the delivery layer to set the cookie expiry.
	AccessTokenDuration() time.Duration
}
