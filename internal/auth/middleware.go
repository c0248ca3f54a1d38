package auth

import (
	"errors"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
)

const identityKey = "identity"

// Identity is the decoded token identity attached to the request context.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// Authenticate requires a valid bearer token. A request without an
// Authorization header answers 401, one with a malformed or badly signed
// token 403, both with empty bodies. On success the decoded identity is
// stored in the request context for downstream handlers.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return
			}
			rawID, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			userID, err := uuid.Parse(rawID)
			if err != nil {
				return
			}
			c.Set(identityKey, Identity{UserID: userID, Role: role})
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return c.NoContent(http.StatusUnauthorized)
			}
			return c.NoContent(http.StatusForbidden)
		},
	})
}

// RequireAdmin gates a route to admin users. Must run after Authenticate;
// without a decoded identity it fails closed.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, httperrors.MessageResponse{Message: "Forbidden"})
		}
		return next(c)
	}
}

// IdentityFromContext returns the identity attached by Authenticate.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}
