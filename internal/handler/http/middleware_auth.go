// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/utils"
)

// loginGate is the final stage of the authorization pipeline, applied to the
// routes that require a live session. The staleness check before it has
// already verified the bearer token's signature and expiry and stored the
// subject in the context; the gate re-runs the full session check against
// storage, so a token revoked by Logout stops working everywhere at once, not
// only on the session-check endpoint.
//
// The gate rejects with 401, never 403: an unauthenticated caller learns that
// it must log in, not whether the route exists or what it would be allowed
// to do. A storage failure during the lookup also denies: no session can be
// confirmed, so none is granted.
func (h *Handler) loginGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		subjectID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Str("path", r.URL.Path).Msg("unauthenticated request to protected route")
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("malformed authorization header at the gate")
			writeError(w, ErrInvalidAuthorizationHeader)
			return
		}

		if _, err := h.services.AuthService.CheckSession(r.Context(), tokenString, subjectID); err != nil {
			log.Err(err).Int64("id", subjectID).Str("path", r.URL.Path).Msg("session check denied protected route")
			// Anything that is not already an authorization failure, storage
			// trouble included, is reported as a dead session.
			if statusFromError(err) != http.StatusUnauthorized {
				err = service.ErrSessionRevoked
			}
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
