// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vitrine/internal/app"
	"github.com/MKhiriev/vitrine/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a route but the method is not
// handled. This handler answers 404 with {"error": ...} instead, so
// unsupported methods look exactly like unknown routes.
//
// Paths with URL parameters ("/api/admin/{type}") are matched the way the
// router matches them, via [chi.Mux.Match]. A request whose method does
// match after all (for instance a HEAD rewritten by middleware) is handed
// back to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
	}
}

// notFound answers unknown routes with the uniform error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
