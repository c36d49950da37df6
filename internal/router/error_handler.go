package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "onboard/internal/errors"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to their HTTP status codes, renders the {"error": ...} envelope,
// and logs unexpected errors without leaking details to the client.
// development enables a diagnostic message on 500 responses.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c, development)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorResponse) {
	// Validation failures carry a per-field message map.
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: "Validation failed", Errors: ve.Fields}
	}

	// Echo's own errors (bind failures, 404 from the router, middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusNotFound && msg == "Not Found" {
			msg = "Not found"
		}
		return he.Code, errorResponse{Error: msg}
	}

	// Known domain errors map to deterministic status codes.
	if code := apperrors.StatusCode(err); code != http.StatusInternalServerError {
		return code, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp := errorResponse{Error: "Internal server error"}
	if development {
		resp.Message = err.Error()
	}
	return http.StatusInternalServerError, resp
}
