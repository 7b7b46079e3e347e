package http

import (
	"encoding/json"
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
)

// csrfToken handles GET /api/auth/csrf: it mints a fresh forgery token for
// the client to replay on subsequent state-changing requests.
func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.CSRFService.IssueToken(ctx)
	if err != nil {
		log.Err(err).Msg("forgery token issuance failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, "csrf token issued", models.CSRFData{CSRFToken: token}, http.StatusOK)
}

// register handles POST /api/auth/register.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("registration request rejected by validation")
		writeError(w, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	writeSuccess(w, "user registered", registeredUser, http.StatusOK)
}

// login handles POST /api/auth/login. On success the response carries the
// safe user record and the signed bearer token, both in the envelope and in
// the "Authorization" response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("login request rejected by validation")
		writeError(w, err)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	writeSuccess(w, "login successful", models.LoginData{
		User:   foundUser,
		Access: token.SignedString,
	}, http.StatusOK)
}

// logout handles POST /api/auth/logout: it clears the login flag, revoking
// any outstanding token for the user immediately. Logout is idempotent and
// exempt from the forgery check.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("logout request rejected by validation")
		writeError(w, err)
		return
	}

	if err := h.services.AuthService.Logout(ctx, request.UserID); err != nil {
		log.Err(err).Int64("id", request.UserID).Msg("logout failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", request.UserID).Msg("user logged out")
	writeSuccess(w, "logout successful", nil, http.StatusOK)
}

// loginCheck handles POST /api/auth/login_check: the full session check.
// The bearer token must verify, must not be expired, must belong to the
// asserted user and the storage-backed login flag must still be set.
func (h *Handler) loginCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("login check request rejected by validation")
		writeError(w, err)
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Error().Msg("login check without authorization header")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Err(err).Msg("malformed authorization header")
		writeError(w, ErrInvalidAuthorizationHeader)
		return
	}

	foundUser, err := h.services.AuthService.CheckSession(ctx, tokenString, request.UserID)
	if err != nil {
		log.Err(err).Int64("id", request.UserID).Msg("session check failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, "session is active", foundUser, http.StatusOK)
}
