package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	// Email is the login identifier. Must be a well-formed address.
	Email string `json:"email"`

	// Password is the plaintext secret, 8-20 characters. It is digested
	// together with the email and the server hashing secret before it ever
	// reaches a query.
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	// UserName is the unique short handle, 5-16 characters.
	UserName string `json:"username"`

	// FullName is the display name. Required, free-form.
	FullName string `json:"fullname"`

	// Email is the unique login identifier. Must be a well-formed address.
	Email string `json:"email"`

	// Password is the plaintext secret, 8-20 characters.
	Password string `json:"password"`
}

// SessionRequest is the body shared by POST /api/auth/logout,
// POST /api/auth/login_check and POST /api/user/delete: a single asserted
// user identity.
type SessionRequest struct {
	// UserID is the identity the caller claims to act for. For login_check it
	// must match the subject of the presented bearer token.
	UserID int64 `json:"UserId"`
}

// UpdateFullNameRequest is the body of POST /api/user/first_name.
type UpdateFullNameRequest struct {
	UserID   int64  `json:"UserId"`
	FullName string `json:"FullName"`
}

// AddUserRequest is the body of POST /api/user/add. The created account
// receives a server-generated placeholder credential; the user is expected to
// go through a reset flow before first login.
type AddUserRequest struct {
	UserName string `json:"username"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}
