package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be between 8 and 20 characters")
	ErrInvalidUserName = errors.New("username must be between 5 and 16 characters")
	ErrEmptyFullName   = errors.New("full name is required")
)
