// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sniper-Code/auth-server/internal/config"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the token lifecycle,
// with a UserRepository for persistence and HMAC-SHA512 credential digests.
type authService struct {
	// userRepository is the data-access layer for accounts and login state.
	userRepository store.UserRepository

	// hashingSecret is the server-wide secret bound into every credential
	// digest. Must match the value used at registration time.
	hashingSecret string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashingSecret:  cfg.HashingSecret,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account from the given registration request.
//
// The plaintext password is digested together with the email and the server
// hashing secret before the account ever reaches storage; the plaintext is
// discarded immediately after.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. the email is
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.UserName == "" || request.FullName == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user := models.User{
		UserName:       request.UserName,
		FullName:       request.FullName,
		Email:          request.Email,
		PasswordDigest: utils.DigestCredentials(request.Email, request.Password, a.hashingSecret),
	}

	registeredUser, err := a.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an account and opens a session.
//
// The supplied credentials are digested and matched against storage in a
// single parameter-bound lookup, so a miss on either the email or the
// password yields the same ErrWrongCredentials.
//
// The login flag is persisted BEFORE the token is signed. If the flag write
// does not land, no token is issued and ErrLoginStateNotPersisted is
// returned: a token must never outlive the server's ability to revoke it.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	digest := utils.DigestCredentials(request.Email, request.Password, a.hashingSecret)
	foundUser, err := a.userRepository.FindByCredentials(ctx, request.Email, digest)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("credential lookup failed")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	rowsAffected, err := a.userRepository.SetLoggedIn(ctx, foundUser.UserID, true)
	if err != nil || rowsAffected == 0 {
		log.Err(err).Int64("id", foundUser.UserID).Msg("login flag was not persisted")
		return models.User{}, models.Token{}, ErrLoginStateNotPersisted
	}
	foundUser.IsLoggedIn = true

	token, err := utils.GenerateJWTToken(foundUser.UserID, foundUser.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token signing failed")
		return models.User{}, models.Token{}, fmt.Errorf("token signing failed: %w", err)
	}

	return foundUser, token, nil
}

// Logout clears the login flag for the given user, revoking any outstanding
// session token immediately.
//
// Logout is idempotent: clearing the flag for a user who is already logged
// out, or who does not exist, is not an error.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("id", userID).Msg("invalid user id provided for logout")
		return ErrInvalidDataProvided
	}

	rowsAffected, err := a.userRepository.SetLoggedIn(ctx, userID, false)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("logout flag update failed")
		return fmt.Errorf("logout flag update failed: %w", err)
	}
	if rowsAffected == 0 {
		log.Debug().Int64("id", userID).Msg("logout for unknown or already logged out user")
	}

	return nil
}

// VerifyToken checks the signature and then the expiry of a raw bearer token.
//
// The signature is always verified first: a forged token fails here and never
// reaches the expiry comparison, let alone storage. Returns the decoded
// claims on success, ErrTokenInvalid on a bad signature or malformed token,
// and ErrTokenExpired when the token verifies but its exp claim has passed.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	claims, err := utils.VerifyJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.TokenClaims{}, ErrTokenInvalid
	}

	if utils.TokenExpired(claims, time.Now()) {
		return models.TokenClaims{}, ErrTokenExpired
	}

	return claims, nil
}

// CheckSession runs the full session check for login_check:
// signature, expiry, subject match, then the storage-backed login flag.
//
// Every check fails closed. A verified, unexpired token whose subject matches
// is still rejected with ErrSessionRevoked when the login flag has been
// cleared — the flag, not the token, is the final word on session validity.
func (a *authService) CheckSession(ctx context.Context, tokenString string, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.VerifyToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("session token rejected")
		return models.User{}, err
	}

	if claims.UserID != userID {
		log.Error().Int64("asserted", userID).Int64("subject", claims.UserID).Msg("token subject mismatch")
		return models.User{}, ErrUserIDMismatch
	}

	foundUser, err := a.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		log.Err(err).Int64("id", claims.UserID).Msg("session subject lookup failed")
		return models.User{}, fmt.Errorf("session subject lookup failed: %w", err)
	}

	if !foundUser.IsLoggedIn {
		log.Debug().Int64("id", foundUser.UserID).Msg("session revoked by logout")
		return models.User{}, ErrSessionRevoked
	}

	return foundUser, nil
}
