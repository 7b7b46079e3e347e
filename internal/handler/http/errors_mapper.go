package http

import (
	"errors"
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	// Credential mismatch is deliberately 400, not 401, so the response does
	// not distinguish a wrong password from an unknown account.
	service.ErrWrongCredentials:       http.StatusBadRequest,
	service.ErrLoginStateNotPersisted: http.StatusInternalServerError,
	service.ErrTokenInvalid:           http.StatusUnauthorized,
	service.ErrTokenExpired:           http.StatusUnauthorized,
	service.ErrUserIDMismatch:         http.StatusUnauthorized,
	service.ErrSessionRevoked:         http.StatusUnauthorized,
	service.ErrForgeryTokenInvalid:    http.StatusForbidden,
	service.ErrForgeryTokenExpired:    http.StatusForbidden,

	validators.ErrInvalidUserID:   http.StatusBadRequest,
	validators.ErrInvalidEmail:    http.StatusBadRequest,
	validators.ErrInvalidPassword: http.StatusBadRequest,
	validators.ErrInvalidUserName: http.StatusBadRequest,
	validators.ErrEmptyFullName:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusInternalServerError,
	store.ErrUserNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingForgeryToken:        http.StatusForbidden,
	ErrSuspiciousInput:            http.StatusBadRequest,
	ErrInvalidJSONBody:            http.StatusBadRequest,
}

// errorResultMap carries the human-readable envelope message for errors whose
// internal text should not leak to clients as-is.
var errorResultMap = map[error]string{
	service.ErrWrongCredentials:       "invalid email or password",
	service.ErrLoginStateNotPersisted: "unable to open a session",
	service.ErrTokenInvalid:           "unauthorized access",
	service.ErrTokenExpired:           "session expired",
	service.ErrUserIDMismatch:         "unauthorized access",
	service.ErrSessionRevoked:         "unauthorized access",

	store.ErrEmailAlreadyExists: "email is already registered",
	store.ErrUserNotFound:       "user not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// resultFromError picks the envelope message for an error. Errors without a
// dedicated message but with a mapped non-5xx status expose their own text;
// everything else collapses to a generic message so internals stay internal.
func resultFromError(err error) string {
	for target, result := range errorResultMap {
		if errors.Is(err, target) {
			return result
		}
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) && errorStatusMap[target] < http.StatusInternalServerError {
			return target.Error()
		}
	}

	return "internal server error"
}
