package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "onboard/internal/errors"
	"onboard/internal/model"
)

// RBAC enforces that the verified role belongs to the allowed set.
// It must run after the JWT middleware has stored claims in the context.
func RBAC(allowedRoles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}
