// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains: public
// content pages, and the session-authenticated admin JSON API for
// structured-data configuration.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dexit/custom-schema-box-generator/internal/handlers"
	"github.com/dexit/custom-schema-box-generator/internal/middleware"
	"github.com/dexit/custom-schema-box-generator/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/admin", func(r chi.Router) {
		// Session endpoints — accessible without authentication.
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		r.Route("/api", func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			// Reads are available to any authenticated user.
			r.Get("/schema/settings", admin.SchemaSettings)
			r.Get("/schema/settings/{map}", admin.SchemaSetting)
			r.Get("/schema/templates", admin.Templates)
			r.Get("/schema/templates/{id}", admin.Template)
			r.Get("/schema/features", admin.Features)
			r.Get("/content/{id}/schema/preview", admin.PreviewContentSchema)

			// Writes require the admin role.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/schema/settings/{map}", admin.UpdateSchemaSetting)
				r.Post("/schema/apply-template", admin.ApplyTemplate)
				r.Put("/content/{id}/schema", admin.UpdateContentSchema)
			})
		})
	})

	// Public routes.
	r.Get("/", public.Homepage)
	r.Get("/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
