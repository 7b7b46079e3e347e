package http

import (
	"context"
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/utils"
)

// stalenessCheck is the third stage of the authorization pipeline. Whenever a
// request carries an "Authorization" header — on any route, public or not —
// the bearer token must verify and must not be expired; a stale or forged
// token is rejected with 401 before any handler runs.
//
// Requests without the header pass through: whether a session is required at
// all is decided by the login-state gate behind this middleware. On success
// the token subject is stored in the request context for downstream handlers.
func (h *Handler) stalenessCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("malformed authorization header")
			writeError(w, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("stale or invalid bearer token")
			writeError(w, err)
			return
		}

		// Store the verified subject so handlers behind the gate can use it
		// without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
