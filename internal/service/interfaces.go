package service

import (
	"context"

	"github.com/Sniper-Code/auth-server/models"
)

// AuthService owns the account lifecycle and the session authority: a session
// is live only while its bearer token verifies AND the storage-backed login
// flag is set. Logout flips the flag, which revokes the session before the
// token expires on its own.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	Logout(ctx context.Context, userID int64) error

	// VerifyToken checks the signature and expiry of a raw bearer token
	// without touching storage.
	VerifyToken(ctx context.Context, tokenString string) (models.TokenClaims, error)

	// CheckSession runs the full session check: signature, expiry, subject
	// match against the asserted user ID, and finally the login flag.
	CheckSession(ctx context.Context, tokenString string, userID int64) (models.User, error)
}

// CSRFService issues and validates the forgery-protection tokens required on
// state-changing requests.
type CSRFService interface {
	IssueToken(ctx context.Context) (string, error)
	ValidateToken(ctx context.Context, token string) error
}

// UserService covers account administration outside the login flow.
type UserService interface {
	UpdateFullName(ctx context.Context, userID int64, fullName string) error
	AddUser(ctx context.Context, request models.AddUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context) ([]models.User, error)
}
