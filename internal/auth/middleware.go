package auth

import (
	"estate-service/internal/domain/admin"
	apperrors "estate-service/pkg/errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Middleware struct {
	jwtService *JWTService
}

func NewMiddleware(jwtService *JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// RequireJWT rejects requests without a bearer token (401) or with an
// invalid/expired one (403), and attaches the decoded identity otherwise.
func (m *Middleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			identity, err := m.jwtService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusForbidden, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyAdmin, identity)
			c.Set(ContextKeyAdminID, identity.AdminID)

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func GetIdentity(c echo.Context) (*admin.Identity, error) {
	identity := c.Get(ContextKeyAdmin)
	if identity == nil {
		return nil, apperrors.Unauthorized(msgAdminNotAuthenticated)
	}

	id, ok := identity.(*admin.Identity)
	if !ok {
		return nil, apperrors.InternalServer(msgInvalidIdentityCtx, nil)
	}

	return id, nil
}

func GetAdminID(c echo.Context) (primitive.ObjectID, error) {
	identity, err := GetIdentity(c)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return identity.AdminID, nil
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		jsonKeySuccess: false,
		jsonKeyError:   message,
	})
}
