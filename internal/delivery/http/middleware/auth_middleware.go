package middleware

import (
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo.Context key under which the authenticated
// identity is stored for downstream handlers.
const identityContextKey = "identity"

// sessionCookieName is the cookie that carries the session token. The login
// handler sets it and Authenticate reads it back.
const sessionCookieName = "token"

// SessionCookieName exposes the cookie name to the login handler.
func SessionCookieName() string {
	return sessionCookieName
}

// AuthMiddleware resolves the acting identity from the session token cookie.
type AuthMiddleware struct {
	codec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// Authenticate validates the session token carried by the "token" cookie.
// A missing cookie and an undecodable token both answer 401, with a Bearer
// challenge header, but through distinct error codes. Decode failures are
// never broken down further; the client learns only that the credential
// did not validate.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return domainerrors.ErrMissingCredential
		}

		claims, err := m.codec.Decode(cookie.Value)
		if err != nil {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return domainerrors.ErrInvalidCredential
		}

		c.Set(identityContextKey, claims.Identity())

		return next(c)
	}
}

// IdentityFrom returns the identity stored by Authenticate. The boolean is
// false when the route was not guarded by the middleware.
func IdentityFrom(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(entity.Identity)
	return identity, ok
}

// RequireIdentity returns the identity or the shared invalid-credential
// error when it is absent. Handlers behind Authenticate use this to avoid
// repeating the type assertion.
func RequireIdentity(c echo.Context) (entity.Identity, error) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return entity.Identity{}, domainerrors.ErrInvalidCredential
	}

	return identity, nil
}
