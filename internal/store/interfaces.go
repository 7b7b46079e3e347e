package store

import (
	"context"

	"github.com/Sniper-Code/auth-server/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The store only uses the classification for diagnostics; nothing
// in the authorization path retries automatically.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the persistence contract for user accounts and their
// login state. The login flag is the only shared mutable resource in the
// system and is read and written exclusively through this interface.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByCredentials(ctx context.Context, email, passwordDigest string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	SetLoggedIn(ctx context.Context, userID int64, loggedIn bool) (int64, error)
	UpdateFullName(ctx context.Context, userID int64, fullName string) error
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]models.User, error)
}
