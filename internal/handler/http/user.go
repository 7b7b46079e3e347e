package http

import (
	"encoding/json"
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
)

// updateFullName handles POST /api/user/first_name. The body's UserId must be
// the token subject: a session only edits its own account.
func (h *Handler) updateFullName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateFullNameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("full name update rejected by validation")
		writeError(w, err)
		return
	}

	if subjectID, ok := utils.GetUserIDFromContext(ctx); !ok || subjectID != request.UserID {
		log.Error().Int64("subject", subjectID).Int64("target", request.UserID).Msg("full name update for another account denied")
		writeError(w, service.ErrUserIDMismatch)
		return
	}

	if err := h.services.UserService.UpdateFullName(ctx, request.UserID, request.FullName); err != nil {
		log.Err(err).Int64("id", request.UserID).Msg("full name update failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, "full name updated", nil, http.StatusOK)
}

// addUser handles POST /api/user/add: account creation without a password.
// The account gets a random placeholder credential and cannot be logged into
// until reset.
func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("add user request rejected by validation")
		writeError(w, err)
		return
	}

	createdUser, err := h.services.UserService.AddUser(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", createdUser.UserID).Msg("user added")
	writeSuccess(w, "user added", createdUser, http.StatusOK)
}

// deleteUser handles POST /api/user/delete. The body's UserId must be the
// token subject: a session only deletes its own account. Deleting an absent
// account is an error: the caller learns whether the account existed.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("delete user request rejected by validation")
		writeError(w, err)
		return
	}

	if subjectID, ok := utils.GetUserIDFromContext(ctx); !ok || subjectID != request.UserID {
		log.Error().Int64("subject", subjectID).Int64("target", request.UserID).Msg("deletion of another account denied")
		writeError(w, service.ErrUserIDMismatch)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, request.UserID); err != nil {
		log.Err(err).Int64("id", request.UserID).Msg("user deletion failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", request.UserID).Msg("user deleted")
	writeSuccess(w, "user deleted", nil, http.StatusOK)
}

// viewUsers handles GET /api/user/view: the safe column subset of every
// account, with a length field for convenience.
func (h *Handler) viewUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, "users fetched", models.UserListData{
		Users:  users,
		Length: len(users),
	}, http.StatusOK)
}
