// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn            func(ctx context.Context, user models.User) (models.User, error)
	findByCredentialsFn func(ctx context.Context, email, passwordDigest string) (models.User, error)
	findByIDFn          func(ctx context.Context, userID int64) (models.User, error)
	setLoggedInFn       func(ctx context.Context, userID int64, loggedIn bool) (int64, error)
	updateFullNameFn    func(ctx context.Context, userID int64, fullName string) error
	deleteFn            func(ctx context.Context, userID int64) error
	listFn              func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindByCredentials(ctx context.Context, email, passwordDigest string) (models.User, error) {
	if m.findByCredentialsFn != nil {
		return m.findByCredentialsFn(ctx, email, passwordDigest)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) SetLoggedIn(ctx context.Context, userID int64, loggedIn bool) (int64, error) {
	if m.setLoggedInFn != nil {
		return m.setLoggedInFn(ctx, userID, loggedIn)
	}
	return 1, nil
}

func (m *mockUserRepository) UpdateFullName(ctx context.Context, userID int64, fullName string) error {
	if m.updateFullNameFn != nil {
		return m.updateFullNameFn(ctx, userID, fullName)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testHashingSecret = "hashing-secret"
	testSignKey       = "sign-key"
)

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		hashingSecret:  testHashingSecret,
		tokenSignKey:   testSignKey,
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	request := models.RegisterRequest{
		UserName: "johnny",
		FullName: "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}

	created, err := svc.Register(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	// The plaintext password never reaches storage; only the keyed digest does.
	wantDigest := utils.DigestCredentials(request.Email, request.Password, testHashingSecret)
	assert.Equal(t, wantDigest, persisted.PasswordDigest)
	assert.NotContains(t, persisted.PasswordDigest, request.Password)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "john@example.com"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		UserName: "johnny", FullName: "John Doe",
		Email: "john@example.com", Password: "password123",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockUserRepository{
		findByCredentialsFn: func(_ context.Context, email, digest string) (models.User, error) {
			assert.Equal(t, utils.DigestCredentials(email, "password123", testHashingSecret), digest)
			return models.User{UserID: 1, Email: email}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, token, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.True(t, user.IsLoggedIn)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(1), token.Claims.UserID)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	repo := &mockUserRepository{
		findByCredentialsFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrongpassword",
	})

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_FlagNotPersisted_NoToken(t *testing.T) {
	tests := []struct {
		name          string
		setLoggedInFn func(ctx context.Context, userID int64, loggedIn bool) (int64, error)
	}{
		{
			name: "storage error",
			setLoggedInFn: func(_ context.Context, _ int64, _ bool) (int64, error) {
				return 0, errStorage
			},
		},
		{
			name: "zero rows touched",
			setLoggedInFn: func(_ context.Context, _ int64, _ bool) (int64, error) {
				return 0, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				findByCredentialsFn: func(_ context.Context, email, _ string) (models.User, error) {
					return models.User{UserID: 1, Email: email}, nil
				},
				setLoggedInFn: tt.setLoggedInFn,
			}
			svc := newTestAuthService(repo)

			_, token, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    "john@example.com",
				Password: "password123",
			})

			require.ErrorIs(t, err, ErrLoginStateNotPersisted)
			assert.Empty(t, token.SignedString, "no token may be issued when the login flag did not persist")
		})
	}
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestAuthService_Logout_Idempotent(t *testing.T) {
	// Logging out a user who is not logged in, or does not exist, succeeds.
	repo := &mockUserRepository{
		setLoggedInFn: func(_ context.Context, _ int64, loggedIn bool) (int64, error) {
			assert.False(t, loggedIn)
			return 0, nil
		},
	}
	svc := newTestAuthService(repo)

	require.NoError(t, svc.Logout(context.Background(), 42))
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		setLoggedInFn: func(_ context.Context, _ int64, _ bool) (int64, error) {
			return 0, errStorage
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Logout(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
}

func TestAuthService_Logout_InvalidUserID(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	require.ErrorIs(t, svc.Logout(context.Background(), 0), ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// VerifyToken
// ─────────────────────────────────────────────

func TestAuthService_VerifyToken_Success(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	token, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestAuthService_VerifyToken_ForgedSignature(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	forged, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, "attacker-key")
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), forged.SignedString)

	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	expired, err := utils.GenerateJWTToken(1, "john@example.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), expired.SignedString)

	// Correct signature, stale token: the two failures are distinguishable.
	require.ErrorIs(t, err, ErrTokenExpired)
}

// ─────────────────────────────────────────────
// CheckSession
// ─────────────────────────────────────────────

func TestAuthService_CheckSession_Active(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "john@example.com", IsLoggedIn: true}, nil
		},
	}
	svc := newTestAuthService(repo)
	token, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	user, err := svc.CheckSession(context.Background(), token.SignedString, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_CheckSession_RevokedBeforeExpiry(t *testing.T) {
	// The token is perfectly valid; only the storage-backed flag was cleared.
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, IsLoggedIn: false}, nil
		},
	}
	svc := newTestAuthService(repo)
	token, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.CheckSession(context.Background(), token.SignedString, 1)

	require.ErrorIs(t, err, ErrSessionRevoked)
}

func TestAuthService_CheckSession_ExpiryIndependentOfFlag(t *testing.T) {
	// The flag is still set, but the token aged out: the session is gone.
	storageTouched := false
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			storageTouched = true
			return models.User{UserID: userID, IsLoggedIn: true}, nil
		},
	}
	svc := newTestAuthService(repo)
	expired, err := utils.GenerateJWTToken(1, "john@example.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.CheckSession(context.Background(), expired.SignedString, 1)

	require.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, storageTouched, "an expired token must be rejected before storage is consulted")
}

func TestAuthService_CheckSession_ForgedTokenNeverReachesStorage(t *testing.T) {
	storageTouched := false
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			storageTouched = true
			return models.User{UserID: userID, IsLoggedIn: true}, nil
		},
	}
	svc := newTestAuthService(repo)
	forged, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, "attacker-key")
	require.NoError(t, err)

	_, err = svc.CheckSession(context.Background(), forged.SignedString, 1)

	require.ErrorIs(t, err, ErrTokenInvalid)
	assert.False(t, storageTouched, "a forged token must be rejected before storage is consulted")
}

func TestAuthService_CheckSession_SubjectMismatch(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	token, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.CheckSession(context.Background(), token.SignedString, 2)

	require.ErrorIs(t, err, ErrUserIDMismatch)
}

func TestAuthService_CheckSession_SubjectLookupFails(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)
	token, err := utils.GenerateJWTToken(1, "john@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.CheckSession(context.Background(), token.SignedString, 1)

	require.ErrorIs(t, err, store.ErrUserNotFound)
}
