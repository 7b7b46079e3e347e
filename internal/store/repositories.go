package store

import (
	"github.com/Sniper-Code/auth-server/internal/logger"
)

// Repositories aggregates every repository backed by the shared [DB] gateway.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
