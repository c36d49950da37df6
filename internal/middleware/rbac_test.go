package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/auth"
	apperrors "onboard/internal/errors"
	"onboard/internal/model"
)

func invokeRBAC(t *testing.T, claims *auth.Claims, allowed ...model.Role) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	return RBAC(allowed...)(next)(c), called
}

func TestRBAC_AllowsPermittedRole(t *testing.T) {
	claims := &auth.Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	err, called := invokeRBAC(t, claims, model.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	claims := &auth.Claims{UserID: uuid.New(), Role: model.RoleBroker}

	err, called := invokeRBAC(t, claims, model.RoleAdmin)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, called)
}

func TestRBAC_RejectsMissingClaims(t *testing.T) {
	err, called := invokeRBAC(t, nil, model.RoleAdmin)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.False(t, called)
}

func TestCurrentClaims_WrongType(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set("user", "not-claims")

	_, ok := CurrentClaims(c)
	assert.False(t, ok)
}
