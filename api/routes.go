package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes consumed by the dashboard UI
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Resource writes run unauthenticated, same as the original site
		// where only the admin UI's redirect guards them
		r.Group(func(r chi.Router) {
			//r.Use(authMiddleware.authenticate)

			// Project Handler endpoints
			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			// Technology Handler endpoints
			r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
			r.Get("/technologies/{technologyID}", handlers.technologyHandler.getTechnology())
			r.Post("/technologies", handlers.technologyHandler.createTechnology())
			r.Put("/technologies/{technologyID}", handlers.technologyHandler.updateTechnology())
			r.Delete("/technologies/{technologyID}", handlers.technologyHandler.deleteTechnology())

			// Integration Handler endpoints
			r.Get("/integrations", handlers.integrationHandler.getAllIntegrations())
			r.Get("/integrations/{integrationID}", handlers.integrationHandler.getIntegration())
			r.Post("/integrations", handlers.integrationHandler.createIntegration())
			r.Put("/integrations/{integrationID}", handlers.integrationHandler.updateIntegration())
			r.Delete("/integrations/{integrationID}", handlers.integrationHandler.deleteIntegration())

			// Seed and migration endpoints
			r.Post("/seed", handlers.adminHandler.seed())
			r.Post("/seed-civic", handlers.adminHandler.seedCivic())
			r.Post("/migrate", handlers.adminHandler.migrate())
		})

		// Public reads
		r.Get("/updates", handlers.updateHandler.getPublishedUpdates())
		r.Get("/metadata", handlers.metadataHandler.getMetadata())
		r.Get("/github-commits", handlers.githubHandler.getCommits())

		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Get("/auth/session", handlers.authHandler.session())
		})
	})
}
