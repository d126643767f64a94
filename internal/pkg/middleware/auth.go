package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/errs"
	jwtpkg "github.com/gasline/gasline/internal/pkg/jwt"
	"github.com/gasline/gasline/internal/utils"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRoles  = "user_roles"
)

// AuthMiddleware verifies the bearer token on protected operations. When
// requiredRoles is non-empty the presented client roles must intersect it;
// otherwise any authenticated principal is accepted. The token's
// preferred_username is exposed as user_id for handlers that take one.
func AuthMiddleware(verifier *jwtpkg.Verifier, requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "invalid authorization format")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errs.IsKind(err, errs.KindExpiredToken) {
					return utils.WriteError(c, err)
				}
				return utils.UnauthorizedResponse(c, "invalid token")
			}

			if len(requiredRoles) > 0 && !hasAnyRole(claims.Roles, requiredRoles) {
				return utils.UnauthorizedResponse(c, "insufficient role")
			}

			c.Set(ContextKeyUserID, claims.Username)
			c.Set(ContextKeyRoles, claims.Roles)

			return next(c)
		}
	}
}

func hasAnyRole(presented, required []string) bool {
	for _, want := range required {
		for _, have := range presented {
			if have == want {
				return true
			}
		}
	}
	return false
}

// RequireSelf binds the named path parameter to the authenticated
// principal: a bearer for one customer cannot act on another customer's
// resources. It must run after AuthMiddleware.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := AuthenticatedUserID(c)
			if principal == "" {
				return utils.UnauthorizedResponse(c, "authentication required")
			}
			if c.Param(param) != principal {
				return utils.ForbiddenResponse(c, "cannot act on another account")
			}
			return next(c)
		}
	}
}

// AuthenticatedUserID returns the principal id set by AuthMiddleware.
func AuthenticatedUserID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
