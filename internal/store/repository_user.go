package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It composes every statement through [TableBuilder] against the fixed column
// enumerations in user.go and executes them through the [DB] gateway.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record with IsLoggedIn=false and returns the
// fully populated [models.User] with server-assigned fields (UserID,
// CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	q, err := NewTableBuilder(userTableName).
		Insert(userInsertColumns, []any{user.UserName, user.FullName, user.Email, user.PasswordDigest}).
		Build()
	if err != nil {
		return models.User{}, err
	}

	// RETURNING gives the caller the canonical database representation of the
	// newly created account in one round trip.
	q.SQL += " RETURNING user_id, user_name, full_name, email, is_logged_in, created_at, updated_at"

	row := r.db.RunQueryRow(ctx, q)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindByCredentials retrieves the user whose email and credential digest both
// match. Zero matching rows is the valid "no such user or wrong password"
// outcome and maps to [ErrUserNotFound]; execution failures are reported
// separately.
func (r *userRepository) FindByCredentials(ctx context.Context, email, passwordDigest string) (models.User, error) {
	log := logger.FromContext(ctx)

	q, err := NewTableBuilder(userTableName).
		Select(userSelectColumns...).
		Where("email = ? AND password_digest = ?", email, passwordDigest).
		Build()
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	if err := scanUser(r.db.RunQueryRow(ctx, q), &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByCredentials").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindByID retrieves the user with the given identity, or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	q, err := NewTableBuilder(userTableName).
		Select(userSelectColumns...).
		Where("user_id = ?", userID).
		Build()
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	if err := scanUser(r.db.RunQueryRow(ctx, q), &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// SetLoggedIn persists the login flag for the given user and returns the
// number of rows the update touched. Zero rows means the user does not exist;
// callers decide whether that matters (logout treats it as success, login
// treats it as failure).
func (r *userRepository) SetLoggedIn(ctx context.Context, userID int64, loggedIn bool) (int64, error) {
	q, err := NewTableBuilder(userTableName).
		Update(userLoginFlagColumns, []any{loggedIn, nowExpr()}).
		Where("user_id = ?", userID).
		Build()
	if err != nil {
		return 0, err
	}

	result, err := r.db.RunExec(ctx, q)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// UpdateFullName persists a new display name for the given user.
// Returns [ErrUserNotFound] if no row was touched.
func (r *userRepository) UpdateFullName(ctx context.Context, userID int64, fullName string) error {
	q, err := NewTableBuilder(userTableName).
		Update(userFullNameColumns, []any{fullName, nowExpr()}).
		Where("user_id = ?", userID).
		Build()
	if err != nil {
		return err
	}

	result, err := r.db.RunExec(ctx, q)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the user row with the given identity.
// Returns [ErrUserNotFound] if no row was touched.
func (r *userRepository) Delete(ctx context.Context, userID int64) error {
	q, err := NewTableBuilder(userTableName).
		Delete().
		Where("user_id = ?", userID).
		Build()
	if err != nil {
		return err
	}

	result, err := r.db.RunExec(ctx, q)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// List returns the safe column subset of every user.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	q, err := NewTableBuilder(userTableName).
		Select(userSelectColumns...).
		Build()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.RunQuery(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans the userSelectColumns set, in order, into user.
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.UserName,
		&user.FullName,
		&user.Email,
		&user.IsLoggedIn,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
