package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sniper-Code/auth-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token for the given
// user identity.
//
// The token carries the application claims {UserId, Email} plus the standard
// IssuedAt and ExpiresAt claims, with exp = now + tokenDuration.
//
// Returns an error if the parameters are invalid or signing fails.
func GenerateJWTToken(userID int64, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID <= 0 || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// VerifyJWTToken checks the signature and structure of a raw session token
// and returns its claims.
//
// Deliberately, this does NOT evaluate temporal validity: the claims of a
// correctly signed but expired token are still returned, and the caller must
// compare the exp claim against the current time itself. Keeping the two
// checks separate guarantees the signature is always verified first — a
// forged token must never reach the expiry comparison, let alone storage.
func VerifyJWTToken(tokenString, signKey string) (models.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims models.TokenClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	if !token.Valid {
		return models.TokenClaims{}, errors.New("invalid token signature")
	}

	return claims, nil
}

// TokenExpired reports whether the exp claim has passed at the given instant.
// A missing exp claim counts as expired: tokens issued by this service always
// carry one, so its absence means the token was not minted here.
func TokenExpired(claims models.TokenClaims, now time.Time) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}
