package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same error covers an unknown email and a wrong password so the
	// response does not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when a unique user field (email, GSTIN) is already taken.
	ErrUserExists = errors.New("email already in use")
	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrBrokerNotFound is returned when a broker lookup finds nothing.
	ErrBrokerNotFound = errors.New("broker not found")
	// ErrCustomerNotFound is returned when a customer is missing or owned by
	// a different broker. The two cases are deliberately indistinguishable.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidBroker is returned when a supplied broker_id does not
	// reference an existing BROKER user.
	ErrInvalidBroker = errors.New("invalid broker_id provided")
	// ErrBrokerRequired is returned when an admin creates a customer without
	// naming the owning broker.
	ErrBrokerRequired = errors.New("broker_id is required for admin customer creation")
	// ErrForbidden is returned when the authenticated role is not allowed.
	ErrForbidden = errors.New("forbidden: insufficient privileges")
)

// ValidationError carries per-field validation messages for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// StatusCode maps a domain error to its HTTP status code.
func StatusCode(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidBroker), errors.Is(err, ErrBrokerRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrBrokerNotFound), errors.Is(err, ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
