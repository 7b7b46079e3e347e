package models

import "time"

// User represents an account entity used for authentication and authorization.
// JSON tags follow the public API contract (PascalCase keys); credential data
// is never serialised.
type User struct {
	// UserID is the stable integer identity of the user, generated by the
	// database at creation time and immutable afterwards.
	UserID int64 `json:"UserId"`

	// UserName is the unique short handle chosen at registration.
	UserName string `json:"UserName"`

	// FullName is the display name of the user. Non-sensitive, mutable.
	FullName string `json:"FullName"`

	// Email is the unique login identifier of the account.
	Email string `json:"Email"`

	// PasswordDigest is the one-way digest of email+password keyed with the
	// server hashing secret. It MUST never be exposed outside the storage and
	// service layers.
	PasswordDigest string `json:"-"`

	// IsLoggedIn is the server-side login flag. A bearer token is only
	// honoured while this flag is true, which is what makes logout an
	// immediate server-side revocation.
	IsLoggedIn bool `json:"IsLoggedIn"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"CreatedAt"`

	// UpdatedAt is the timestamp of the last modification. Internal only.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
