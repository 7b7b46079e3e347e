// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 whenever a request path
// matches a registered route but the method is not handled. This function
// overrides that: an unsupported method gets the same 404 envelope as an
// unknown path, hiding the existence of the route from callers probing with
// the wrong verb.
//
// If the requested method IS registered for the matched route, the request is
// forwarded to the router's normal ServeHTTP pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		// Search for a route whose pattern exactly matches the requested path.
		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			utils.WriteJSON(w, models.Err("route not found"), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
