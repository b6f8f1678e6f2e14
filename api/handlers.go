package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hariship/apps-dashboard-backend/config"
	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
	"github.com/hariship/apps-dashboard-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, feed *services.CommitFeed, c map[string]string) *routeHandlers {
	production := config.GetString(c, "APP_ENV", "development") == "production"
	adminEmail := config.GetString(c, "ADMIN_EMAIL", "")
	adminPassword := config.GetString(c, "ADMIN_PASSWORD", "")
	jwtSecret := []byte(config.GetString(c, "JWT_SECRET", "dev-secret-change-me"))

	return &routeHandlers{
		projectHandler:     newProjectHandler(database.ProjectRepo(), database.ProjectTechnologyRepo()),
		technologyHandler:  newTechnologyHandler(database.TechnologyRepo(), database.ProjectTechnologyRepo()),
		integrationHandler: newIntegrationHandler(database.IntegrationRepo()),
		updateHandler:      newUpdateHandler(database.UpdateRepo()),
		metadataHandler:    newMetadataHandler(),
		githubHandler:      newGithubHandler(feed),
		adminHandler:       newAdminHandler(database, production, adminEmail, adminPassword),
		authHandler:        newAuthHandler(database.UserRepo(), jwtSecret),
	}
}

// parseIDParam reads a positive integer URL parameter
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(parsed), nil
}
