package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
	"github.com/hariship/apps-dashboard-backend/models"
)

type technologyHandler struct {
	responder             Responder
	logger                zerolog.Logger
	technologyRepo        *database.TechnologyRepo
	projectTechnologyRepo *database.ProjectTechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo, projectTechnologyRepo *database.ProjectTechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:             NewResponder(logger),
		logger:                logger,
		technologyRepo:        technologyRepo,
		projectTechnologyRepo: projectTechnologyRepo,
	}
}

type technologyRequest struct {
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Icon       *string `json:"icon"`
	WebsiteURL *string `json:"website_url"`
	Active     *bool   `json:"active"`
}

func (req *technologyRequest) validate() error {
	if req.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if req.Slug == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	if req.Category == "" {
		req.Category = "tool"
	}
	if !models.ValidCategory(req.Category) {
		return errs.NewInvalidFieldError("category", "must be one of frontend, backend, database, devops, tool, framework, language")
	}
	if req.Color == "" {
		req.Color = "#6B7280"
	}
	return nil
}

func (req *technologyRequest) toModel() models.Technology {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return models.Technology{
		Name:       req.Name,
		Slug:       req.Slug,
		Category:   req.Category,
		Color:      req.Color,
		Icon:       req.Icon,
		WebsiteURL: req.WebsiteURL,
		Active:     active,
	}
}

// getAllTechnologies lists technologies grouped by category
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}

		h.responder.WriteData(w, technologies)
	}
}

// getTechnology retrieves one technology by ID
func (h technologyHandler) getTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}
		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Technology not found"))
			return
		}

		h.responder.WriteData(w, technology)
	}
}

// createTechnology creates a new technology
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req technologyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology := req.toModel()
		if err := h.technologyRepo.Add(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "technology", err))
			return
		}

		h.responder.WriteCreated(w, technology)
	}
}

// updateTechnology replaces every mutable field of an existing technology
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Technology not found"))
			return
		}

		var req technologyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology := req.toModel()
		technology.ID = technologyID
		technology.CreatedAt = existing.CreatedAt

		if err := h.technologyRepo.Update(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteData(w, technology)
	}
}

// deleteTechnology removes a technology unless any project still references it
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		usageCount, err := h.projectTechnologyRepo.CountByTechnologyID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check usage of", "technology", err))
			return
		}
		if usageCount > 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Cannot delete technology that is used in projects"))
			return
		}

		technology, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}
		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Technology not found"))
			return
		}

		if err := h.technologyRepo.Delete(technologyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteMessage(w, "Technology deleted successfully")
	}
}
