package store

import (
	"github.com/Sniper-Code/auth-server/migrations"
)

// Migrate applies the embedded goose migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
