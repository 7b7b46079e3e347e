package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set. This is a valid "not found"
	// outcome, distinct from an execution failure.
	ErrUserNotFound = errors.New("user not found")
)

// Low-level database and query-composition errors. These are returned (or
// wrapped) by the query builder and repository methods when an operation
// fails before any domain logic can be applied.
var (
	// ErrVerbNotSet is returned by [TableBuilder.Build] when no verb method
	// was called before Build. This is a programming error, not a runtime
	// condition.
	ErrVerbNotSet = errors.New("query verb not set before build")

	// ErrColumnValueMismatch is returned by [TableBuilder.Build] when an
	// insert or update was given column and value lists of different lengths.
	ErrColumnValueMismatch = errors.New("column/value list length mismatch")

	// ErrBuildingSQLQuery is returned when composing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails at the driver level.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)
