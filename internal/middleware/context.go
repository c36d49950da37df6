package middleware

import (
	"github.com/labstack/echo/v4"

	"onboard/internal/auth"
)

// claimsKey is the echo context key the JWT middleware stores claims under.
const claimsKey = "user"

// CurrentClaims returns the verified session claims for the request, if any.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}
