// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/logger"
)

// forgeryTokenHeader is the request header carrying the forgery token issued
// by GET /api/auth/csrf.
const forgeryTokenHeader = "X-Csrf-Token"

// forgeryExemptRoutes lists state-changing routes that skip the forgery
// check. Logout is exempt so that a client whose forgery token has expired
// can always terminate its session.
var forgeryExemptRoutes = map[string]struct{}{
	"/api/auth/logout": {},
}

// forgeryCheck is the first stage of the authorization pipeline. Every
// state-changing request must present a valid forgery token; safe methods and
// the exempt routes pass through untouched.
func (h *Handler) forgeryCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if _, exempt := forgeryExemptRoutes[r.URL.Path]; exempt {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token := r.Header.Get(forgeryTokenHeader)
		if token == "" {
			log.Error().Str("path", r.URL.Path).Msg("forgery token is missing")
			writeError(w, ErrMissingForgeryToken)
			return
		}

		if err := h.services.CSRFService.ValidateToken(r.Context(), token); err != nil {
			log.Err(err).Str("path", r.URL.Path).Msg("forgery token rejected")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
