package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
)

// adminHandler exposes the destructive reseed strategies and the additive
// schema migration.
type adminHandler struct {
	responder     Responder
	logger        zerolog.Logger
	db            database.Database
	production    bool
	adminEmail    string
	adminPassword string
}

func newAdminHandler(db database.Database, production bool, adminEmail, adminPassword string) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		db:            db,
		production:    production,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// seed wipes and repopulates with the general dataset. Refused in production.
func (h adminHandler) seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.production {
			h.responder.WriteError(w, errs.NewForbiddenError("Seeding is not allowed in production"))
			return
		}

		if err := h.db.Seed(database.SeedGeneral(h.adminEmail, h.adminPassword)); err != nil {
			h.logger.Error().Err(err).Msg("seed failed")
			h.responder.WriteError(w, errs.NewInternalError("Failed to seed database"))
			return
		}

		h.responder.WriteMessage(w, "Database seeded successfully")
	}
}

// seedCivic wipes and repopulates with the Civic Pulse dataset
func (h adminHandler) seedCivic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Seed(database.SeedCivicPulse(h.adminEmail, h.adminPassword)); err != nil {
			h.logger.Error().Err(err).Msg("civic seed failed")
			h.responder.WriteError(w, errs.NewInternalError("Failed to seed civic pulse database"))
			return
		}

		h.responder.WriteMessage(w, "Civic Pulse database seeded successfully")
	}
}

// migrate applies the additive, idempotent schema migration
func (h adminHandler) migrate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Migrate(); err != nil {
			h.logger.Error().Err(err).Msg("migration failed")
			h.responder.WriteError(w, errs.NewInternalError("Failed to migrate database"))
			return
		}

		h.responder.WriteMessage(w, "Database migrated successfully")
	}
}
