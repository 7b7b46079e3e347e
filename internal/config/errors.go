package config

import "errors"

var (
	// ErrNoHashingSecret is returned when no credential hashing secret was
	// provided by any configuration source.
	ErrNoHashingSecret = errors.New("hashing secret is not set")
	// ErrNoTokenSignKey is returned when no token signing key was provided.
	ErrNoTokenSignKey = errors.New("token sign key is not set")
	// ErrNoDatabaseDSN is returned when no database DSN was provided.
	ErrNoDatabaseDSN = errors.New("database DSN is not set")
)
