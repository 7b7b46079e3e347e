// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors raised by the authorization pipeline. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is hit
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingForgeryToken is returned when a state-changing request does
	// not carry a forgery token at all.
	ErrMissingForgeryToken = errors.New("missing forgery token")

	// ErrSuspiciousInput is returned by the injection filter when a request
	// carries input matching a known injection pattern.
	ErrSuspiciousInput = errors.New("suspicious input detected")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)
