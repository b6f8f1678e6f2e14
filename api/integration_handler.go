package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
	"github.com/hariship/apps-dashboard-backend/models"
)

type integrationHandler struct {
	responder       Responder
	logger          zerolog.Logger
	integrationRepo *database.IntegrationRepo
}

func newIntegrationHandler(integrationRepo *database.IntegrationRepo) integrationHandler {
	logger := log.With().Str("handlerName", "integrationHandler").Logger()

	return integrationHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		integrationRepo: integrationRepo,
	}
}

type integrationRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Icon        *string    `json:"icon"`
	Status      string     `json:"status"`
	Version     *string    `json:"version"`
	LastChecked *time.Time `json:"last_checked"`
	Enabled     *bool      `json:"enabled"`
	SortOrder   int        `json:"sort_order"`
}

func (req *integrationRequest) validate() error {
	switch {
	case req.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	case req.Slug == "":
		return errs.NewMissingRequiredFieldError("slug")
	case req.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	case req.URL == "":
		return errs.NewMissingRequiredFieldError("url")
	}
	if req.Status == "" {
		req.Status = "operational"
	}
	if !models.ValidIntegrationStatus(req.Status) {
		return errs.NewInvalidFieldError("status", "must be one of operational, maintenance, outage")
	}
	return nil
}

func (req *integrationRequest) toModel() models.Integration {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	return models.Integration{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		URL:         req.URL,
		Icon:        req.Icon,
		Status:      req.Status,
		Version:     req.Version,
		LastChecked: req.LastChecked,
		Enabled:     enabled,
		SortOrder:   req.SortOrder,
	}
}

func (h integrationHandler) getAllIntegrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrations, err := h.integrationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "integrations", err))
			return
		}

		h.responder.WriteData(w, integrations)
	}
}

func (h integrationHandler) getIntegration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID, err := parseIDParam(r, "integrationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		integration, err := h.integrationRepo.FindByID(integrationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "integration", err))
			return
		}
		if integration == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Integration not found"))
			return
		}

		h.responder.WriteData(w, integration)
	}
}

func (h integrationHandler) createIntegration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req integrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode integration request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		integration := req.toModel()
		if err := h.integrationRepo.Add(&integration); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "integration", err))
			return
		}

		h.responder.WriteCreated(w, integration)
	}
}

func (h integrationHandler) updateIntegration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID, err := parseIDParam(r, "integrationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.integrationRepo.FindByID(integrationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "integration", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Integration not found"))
			return
		}

		var req integrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode integration request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		integration := req.toModel()
		integration.ID = integrationID
		integration.CreatedAt = existing.CreatedAt

		if err := h.integrationRepo.Update(&integration); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "integration", err))
			return
		}

		h.responder.WriteData(w, integration)
	}
}

func (h integrationHandler) deleteIntegration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID, err := parseIDParam(r, "integrationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		integration, err := h.integrationRepo.FindByID(integrationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "integration", err))
			return
		}
		if integration == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Integration not found"))
			return
		}

		if err := h.integrationRepo.Delete(integrationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "integration", err))
			return
		}

		h.responder.WriteMessage(w, "Integration deleted successfully")
	}
}
