package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sniper-Code/auth-server/internal/config"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the single external boundary between the application and PostgreSQL.
// Repositories hand it composed [Query] descriptors; it executes them and
// returns rows or results. No other code path touches the database.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool to PostgreSQL using the pgx
// stdlib driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// RunQuery executes a SELECT descriptor and returns the resulting rows.
// Closing the rows is the caller's responsibility.
func (db *DB) RunQuery(ctx context.Context, q Query) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		db.logQueryError(ctx, q, err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return rows, nil
}

// RunQueryRow executes a SELECT descriptor expected to match at most one row.
func (db *DB) RunQueryRow(ctx context.Context, q Query) *sql.Row {
	return db.QueryRowContext(ctx, q.SQL, q.Args...)
}

// RunExec executes an INSERT, UPDATE or DELETE descriptor.
func (db *DB) RunExec(ctx context.Context, q Query) (sql.Result, error) {
	result, err := db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		db.logQueryError(ctx, q, err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return result, nil
}

func (db *DB) logQueryError(ctx context.Context, q Query, err error) {
	logger.FromContext(ctx).Err(err).
		Str("table", q.Table).
		Str("verb", string(q.Verb)).
		Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
		Msg("query execution failed")
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
