package store

// Fixed column enumerations for the users table. Query descriptors are always
// composed from these lists — column names never come from request input,
// which together with placeholder binding is the structural injection
// defense.
const userTableName = "users"

var (
	// userSelectColumns is the safe column subset returned to callers.
	// The password digest is deliberately absent.
	userSelectColumns = []string{
		"user_id",
		"user_name",
		"full_name",
		"email",
		"is_logged_in",
		"created_at",
		"updated_at",
	}

	// userInsertColumns is the column set written at registration.
	userInsertColumns = []string{
		"user_name",
		"full_name",
		"email",
		"password_digest",
	}

	// userLoginFlagColumns is the column set touched by login/logout
	// transitions.
	userLoginFlagColumns = []string{
		"is_logged_in",
		"updated_at",
	}

	// userFullNameColumns is the column set touched by a full-name update.
	userFullNameColumns = []string{
		"full_name",
		"updated_at",
	}
)
