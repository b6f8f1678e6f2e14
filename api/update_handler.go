package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
)

type updateHandler struct {
	responder  Responder
	logger     zerolog.Logger
	updateRepo *database.UpdateRepo
}

func newUpdateHandler(updateRepo *database.UpdateRepo) updateHandler {
	logger := log.With().Str("handlerName", "updateHandler").Logger()

	return updateHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		updateRepo: updateRepo,
	}
}

// getPublishedUpdates lists published changelog entries newest first,
// optionally filtered with ?project_id=
func (h updateHandler) getPublishedUpdates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var projectID *uint
		if raw := r.URL.Query().Get("project_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid project_id"))
				return
			}
			id := uint(parsed)
			projectID = &id
		}

		updates, err := h.updateRepo.FindPublished(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "updates", err))
			return
		}

		h.responder.WriteData(w, updates)
	}
}
