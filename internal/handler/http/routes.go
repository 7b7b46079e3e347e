package http

import (
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the router and the authorization pipeline.
//
// The middleware order is load-bearing: the forgery check runs before any
// body is interpreted, the injection filter before any handler sees input,
// and the staleness check before the login-state gate. The gate is scoped to
// the routes that require a live session, so session lifecycle routes stay
// reachable and unmatched paths fall through to the 404 envelope instead of
// a misleading 401.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.forgeryCheck)
	router.Use(h.injectionFilter)
	router.Use(h.stalenessCheck)

	// session and account lifecycle
	router.Group(func(r chi.Router) {
		r.Get("/api/auth/csrf", h.csrfToken)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login_check", h.loginCheck)
	})

	// account administration, live session required
	router.Group(func(r chi.Router) {
		r.Use(h.loginGate)
		r.Post("/api/user/first_name", h.updateFullName)
		r.Post("/api/user/add", h.addUser)
		r.Post("/api/user/delete", h.deleteUser)
		r.Get("/api/user/view", h.viewUsers)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.Err("route not found"), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
