package validators

import (
	"context"
	"net/mail"

	"github.com/Sniper-Code/auth-server/models"
)

const (
	FieldUserID   = "user_id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserName = "username"
	FieldFullName = "fullname"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 20
	userNameMinLength = 5
	userNameMaxLength = 16
)

type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.SessionRequest:
		return v.validateSessionRequest(ctx, value, fields...)
	case *models.SessionRequest:
		return v.validateSessionRequest(ctx, *value, fields...)

	case models.UpdateFullNameRequest:
		return v.validateUpdateFullNameRequest(ctx, value, fields...)
	case *models.UpdateFullNameRequest:
		return v.validateUpdateFullNameRequest(ctx, *value, fields...)

	case models.AddUserRequest:
		return v.validateAddUserRequest(ctx, value, fields...)
	case *models.AddUserRequest:
		return v.validateAddUserRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(address string) bool {
	if address == "" {
		return false
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts the "Name <addr>" form; a bare address
	// must round-trip to itself.
	return parsed.Address == address
}

func isValidPassword(password string) bool {
	return len(password) >= passwordMinLength && len(password) <= passwordMaxLength
}

func isValidUserName(userName string) bool {
	return len(userName) >= userNameMinLength && len(userName) <= userNameMaxLength
}

func (v *AccountValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !isValidPassword(request.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldFullName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if !isValidUserName(request.UserName) {
				return ErrInvalidUserName
			}
		case FieldFullName:
			if request.FullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !isValidPassword(request.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSessionRequest(ctx context.Context, request models.SessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateUpdateFullNameRequest(ctx context.Context, request models.UpdateFullNameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldFullName:
			if request.FullName == "" {
				return ErrEmptyFullName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateAddUserRequest(ctx context.Context, request models.AddUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldFullName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if !isValidUserName(request.UserName) {
				return ErrInvalidUserName
			}
		case FieldFullName:
			if request.FullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
