package service

import (
	"context"
	"fmt"

	"github.com/Sniper-Code/auth-server/internal/config"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/google/uuid"
)

// userService is the concrete implementation of UserService: account
// administration outside the login flow.
type userService struct {
	userRepository store.UserRepository
	hashingSecret  string
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashingSecret:  cfg.HashingSecret,
		logger:         logger,
	}
}

// UpdateFullName changes the display name of an account.
//
// Returns ErrInvalidDataProvided on bad input and store.ErrUserNotFound when
// the account does not exist.
func (u *userService) UpdateFullName(ctx context.Context, userID int64, fullName string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || fullName == "" {
		log.Error().Int64("id", userID).Msg("invalid full name update data provided")
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.UpdateFullName(ctx, userID, fullName); err != nil {
		log.Err(err).Int64("id", userID).Msg("full name update failed")
		return fmt.Errorf("full name update failed: %w", err)
	}

	return nil
}

// AddUser creates an account without a caller-chosen password.
//
// The account is stored with a digest of a random placeholder credential, so
// it cannot be logged into until the password is reset through a separate
// flow. Returns store.ErrEmailAlreadyExists when the email is taken.
func (u *userService) AddUser(ctx context.Context, request models.AddUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.UserName == "" || request.FullName == "" || request.Email == "" {
		log.Error().Str("email", request.Email).Msg("invalid add user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	placeholder := uuid.NewString()
	user := models.User{
		UserName:       request.UserName,
		FullName:       request.FullName,
		Email:          request.Email,
		PasswordDigest: utils.DigestCredentials(request.Email, placeholder, u.hashingSecret),
	}

	createdUser, err := u.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// DeleteUser removes an account. Deleting an absent account returns
// store.ErrUserNotFound; deletion is not idempotent on purpose, the caller
// learns whether the account existed.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("id", userID).Msg("invalid user id provided for deletion")
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.Delete(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// ListUsers returns the safe column subset of every account.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
