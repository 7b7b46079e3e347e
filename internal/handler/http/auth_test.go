// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/store"
	"github.com/Sniper-Code/auth-server/internal/validators"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	logoutFn       func(ctx context.Context, userID int64) error
	verifyTokenFn  func(ctx context.Context, tokenString string) (models.TokenClaims, error)
	checkSessionFn func(ctx context.Context, tokenString string, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	return m.logoutFn(ctx, userID)
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	return m.verifyTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CheckSession(ctx context.Context, tokenString string, userID int64) (models.User, error) {
	return m.checkSessionFn(ctx, tokenString, userID)
}

// mockCSRFService implements service.CSRFService.
type mockCSRFService struct {
	issueTokenFn    func(ctx context.Context) (string, error)
	validateTokenFn func(ctx context.Context, token string) error
}

func (m *mockCSRFService) IssueToken(ctx context.Context) (string, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx)
	}
	return "nonce.9999999999.signature", nil
}

func (m *mockCSRFService) ValidateToken(ctx context.Context, token string) error {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil
}

// mockUserService implements service.UserService.
type mockUserService struct {
	updateFullNameFn func(ctx context.Context, userID int64, fullName string) error
	addUserFn        func(ctx context.Context, request models.AddUserRequest) (models.User, error)
	deleteUserFn     func(ctx context.Context, userID int64) error
	listUsersFn      func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) UpdateFullName(ctx context.Context, userID int64, fullName string) error {
	return m.updateFullNameFn(ctx, userID, fullName)
}

func (m *mockUserService) AddUser(ctx context.Context, request models.AddUserRequest) (models.User, error) {
	return m.addUserFn(ctx, request)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, validators.NewAccountValidator(), logger.Nop())
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope parses the recorded response body into an envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()
	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

var validLogin = models.LoginRequest{
	Email:    "alice@example.com",
	Password: "password123",
}

// ─────────────────────────────────────────────
// csrfToken
// ─────────────────────────────────────────────

func TestCSRFToken_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		CSRFService: &mockCSRFService{
			issueTokenFn: func(_ context.Context) (string, error) {
				return "issued-token", nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/csrf", nil)
	rec := httptest.NewRecorder()

	h.csrfToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, models.StatusSuccess, envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "issued-token", data["CsrfToken"])
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
				return models.User{UserID: 1, UserName: request.UserName, Email: request.Email}, nil
			},
		},
	})

	body := jsonBody(t, models.RegisterRequest{
		UserName: "alice1", FullName: "Alice Doe",
		Email: "alice@example.com", Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "user registered", envelope.Result)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, models.StatusError, envelope.Status)
}

func TestRegister_ValidationRejects(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	body := jsonBody(t, models.RegisterRequest{
		UserName: "al", FullName: "Alice Doe",
		Email: "alice@example.com", Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestRegister_EmailTaken(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		},
	})

	body := jsonBody(t, models.RegisterRequest{
		UserName: "alice1", FullName: "Alice Doe",
		Email: "alice@example.com", Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "email is already registered", envelope.Result)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, request models.LoginRequest) (models.User, models.Token, error) {
				return models.User{UserID: 1, Email: request.Email, IsLoggedIn: true},
					models.Token{SignedString: signedToken}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, signedToken, data["access"])

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["UserId"])
	// The digest never appears in a response.
	assert.NotContains(t, user, "PasswordDigest")
}

func TestLogin_WrongCredentials(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrWrongCredentials
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	// 400, not 401: the response does not confirm whether the account exists.
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid email or password", envelope.Result)
	assert.Nil(t, envelope.Data)
}

func TestLogin_FlagNotPersisted(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrLoginStateNotPersisted
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var loggedOut int64
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			logoutFn: func(_ context.Context, userID int64) error {
				loggedOut = userID
				return nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout",
		strings.NewReader(jsonBody(t, models.SessionRequest{UserID: 7})))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), loggedOut)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestLogout_InvalidUserID(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout",
		strings.NewReader(jsonBody(t, models.SessionRequest{UserID: 0})))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// loginCheck
// ─────────────────────────────────────────────

func TestLoginCheck_Active(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			checkSessionFn: func(_ context.Context, tokenString string, userID int64) (models.User, error) {
				assert.Equal(t, "the-token", tokenString)
				assert.Equal(t, int64(1), userID)
				return models.User{UserID: 1, IsLoggedIn: true}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login_check",
		strings.NewReader(jsonBody(t, models.SessionRequest{UserID: 1})))
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()

	h.loginCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestLoginCheck_MissingAuthorizationHeader(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login_check",
		strings.NewReader(jsonBody(t, models.SessionRequest{UserID: 1})))
	rec := httptest.NewRecorder()

	h.loginCheck(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestLoginCheck_Revoked(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			checkSessionFn: func(_ context.Context, _ string, _ int64) (models.User, error) {
				return models.User{}, service.ErrSessionRevoked
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login_check",
		strings.NewReader(jsonBody(t, models.SessionRequest{UserID: 1})))
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()

	h.loginCheck(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "unauthorized access", envelope.Result)
}
