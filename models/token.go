package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set carried by every issued session token.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (exp, iat) and adds
// the two application claims that identify the session subject. The token is
// intentionally minimal: everything else about the user is looked up from
// storage at verification time, because the storage-backed login flag — not
// the token — is the final word on whether a session is still valid.
type TokenClaims struct {
	// UserID is the identity of the user the token was issued for.
	UserID int64 `json:"UserId"`

	// Email is the login identifier of the user at issuance time.
	Email string `json:"Email"`

	jwt.RegisteredClaims
}

// Token wraps a signed session token together with its decoded claims.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the "Authorization" header or embedded in a
// response body.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
