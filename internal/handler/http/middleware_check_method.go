// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve gets 404, so the
// tag directory never advertises which verbs exist on a route.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeServes(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeServes compares patterns literally; parameterised segments are not
// expanded.
func routeServes(router chi.Routes, path, method string) bool {
	route, found := lo.Find(router.Routes(), func(route chi.Route) bool {
		return route.Pattern == path
	})
	if !found {
		return false
	}

	_, ok := route.Handlers[method]
	return ok
}
