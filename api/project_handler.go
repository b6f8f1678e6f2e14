package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
	"github.com/hariship/apps-dashboard-backend/models"
)

type projectHandler struct {
	responder             Responder
	logger                zerolog.Logger
	projectRepo           *database.ProjectRepo
	projectTechnologyRepo *database.ProjectTechnologyRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectTechnologyRepo *database.ProjectTechnologyRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:             NewResponder(logger),
		logger:                logger,
		projectRepo:           projectRepo,
		projectTechnologyRepo: projectTechnologyRepo,
	}
}

// projectRequest is the full field set of a project write. PUT is a full
// replacement: omitted fields become their defaults, never "leave unchanged".
type projectRequest struct {
	Name                 string  `json:"name"`
	Slug                 string  `json:"slug"`
	Description          string  `json:"description"`
	LongDescription      *string `json:"long_description"`
	LiveURL              string  `json:"live_url"`
	SourceURL            string  `json:"source_url"`
	ImageURL             *string `json:"image_url"`
	Status               string  `json:"status"`
	Featured             bool    `json:"featured"`
	SortOrder            int     `json:"sort_order"`
	ArchitectureDiagram  *string `json:"architecture_diagram"`
	ArchitectureCode     *string `json:"architecture_code"`
	TechStackDescription *string `json:"tech_stack_description"`
	TechnologyIDs        []uint  `json:"technology_ids"`
}

func (req *projectRequest) validate() error {
	switch {
	case req.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	case req.Slug == "":
		return errs.NewMissingRequiredFieldError("slug")
	case req.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	case req.LiveURL == "":
		return errs.NewMissingRequiredFieldError("live_url")
	case req.SourceURL == "":
		return errs.NewMissingRequiredFieldError("source_url")
	}
	if req.Status == "" {
		req.Status = "active"
	}
	if !models.ValidProjectStatus(req.Status) {
		return errs.NewInvalidFieldError("status", "must be one of active, maintenance, archived")
	}
	return nil
}

func (req *projectRequest) toModel() models.Project {
	return models.Project{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Description:          req.Description,
		LongDescription:      req.LongDescription,
		LiveURL:              req.LiveURL,
		SourceURL:            req.SourceURL,
		ImageURL:             req.ImageURL,
		Status:               req.Status,
		Featured:             req.Featured,
		SortOrder:            req.SortOrder,
		ArchitectureDiagram:  req.ArchitectureDiagram,
		ArchitectureCode:     req.ArchitectureCode,
		TechStackDescription: req.TechStackDescription,
	}
}

// getAllProjects retrieves all projects with their technologies
// @Summary List projects
// @Description Returns every project ordered by sort order, each with its technologies
// @Tags Projects
// @Produce json
// @Success 200 {object} envelope "List of projects"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteData(w, projects)
	}
}

// getProject retrieves a specific project by ID with its technologies
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} envelope "Project details"
// @Failure 404 {object} envelope "Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteData(w, project)
	}
}

// createProject creates a new project, optionally linked to technologies
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Success 201 {object} envelope "Created project"
// @Failure 400 {object} envelope "Invalid project data"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.toModel()
		if err := h.projectRepo.Add(&project, req.TechnologyIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload to include the linked technologies
		createdProject, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteCreated(w, createdProject)
	}
}

// updateProject replaces every mutable field of an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} envelope "Updated project"
// @Failure 404 {object} envelope "Project not found"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existingProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.toModel()
		project.ID = projectID
		project.CreatedAt = existingProject.CreatedAt

		if err := h.projectRepo.Update(&project, req.TechnologyIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updatedProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteData(w, updatedProject)
	}
}

// deleteProject deletes a project with its technology links and updates
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} envelope "Success message"
// @Failure 404 {object} envelope "Project not found"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteMessage(w, "Project deleted successfully")
	}
}
