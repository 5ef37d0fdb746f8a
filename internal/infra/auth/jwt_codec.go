// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"tasker/config"
	"tasker/internal/domain/entity"
	"tasker/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Session validity is fully determined by the token itself: an HMAC
// signature against the server secret plus an expiry claim.
type jwtCodec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
// Configuration problems are returned as errors so that startup fails fast
// instead of producing a server that rejects every token.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	var method *jwt.SigningMethodHMAC
	switch cfg.JWT.Algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, errors.Errorf("unsupported jwt algorithm %q", cfg.JWT.Algorithm)
	}

	ttl := cfg.AccessTokenTTL()
	if ttl <= 0 {
		return nil, errors.New("jwt access token ttl must be positive")
	}

	return &jwtCodec{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token carrying the identity's username as
// the subject and its user id as a private claim. Expiry has second
// granularity, per the JWT NumericDate encoding.
func (c *jwtCodec) Issue(identity entity.Identity) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: identity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(c.method, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode verifies the signature, expiry and subject of a token string.
// Every failure collapses into service.ErrTokenInvalid; callers never learn
// which check rejected the token.
func (c *jwtCodec) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Pin the algorithm to the configured one. Accepting any HMAC
		// variant would still be safe, but accepting "none" or an
		// asymmetric method would not, so the check is exact.
		if token.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	// jwt.ParseWithClaims validates exp; the subject claim is ours to check.
	if claims.Subject == "" {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}

// AccessTokenDuration returns the configured token lifetime.
func (c *jwtCodec) AccessTokenDuration() time.Duration {
	return c.ttl
}
