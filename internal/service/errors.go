package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	// ErrLoginStateNotPersisted is returned when the login flag could not be
	// written to storage. No token is issued in that case: a session whose
	// revocation switch was never armed cannot be revoked later.
	ErrLoginStateNotPersisted = errors.New("login state was not persisted")

	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token is expired")
	ErrUserIDMismatch = errors.New("token subject does not match the asserted user")
	ErrSessionRevoked = errors.New("session has been revoked")

	ErrForgeryTokenInvalid = errors.New("forgery token is invalid")
	ErrForgeryTokenExpired = errors.New("forgery token is expired")
)
