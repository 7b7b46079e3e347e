package http

import (
	"net/http"
	"time"

	"github.com/Sniper-Code/auth-server/internal/logger"
)

// withLogging writes one summary line per request once the handler chain has
// finished, through the trace-tagged logger bound by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(recorder, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", recorder.status).
			Int("size", recorder.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
