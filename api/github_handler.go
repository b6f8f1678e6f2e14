package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hariship/apps-dashboard-backend/errs"
	"github.com/hariship/apps-dashboard-backend/services"
)

const (
	defaultCommitRepo  = "hariship/apps"
	defaultCommitLimit = 5
)

type githubHandler struct {
	responder Responder
	logger    zerolog.Logger
	feed      *services.CommitFeed
}

func newGithubHandler(feed *services.CommitFeed) githubHandler {
	logger := log.With().Str("handlerName", "githubHandler").Logger()

	return githubHandler{
		responder: NewResponder(logger),
		logger:    logger,
		feed:      feed,
	}
}

// getCommits proxies the commit feed with ?repo= and ?limit=
func (h githubHandler) getCommits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := r.URL.Query().Get("repo")
		if repo == "" {
			repo = defaultCommitRepo
		}

		limit := defaultCommitLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		commits, err := h.feed.ListCommits(r.Context(), repo, limit)
		if err != nil {
			h.logger.Error().Err(err).Str("repo", repo).Msg("commit feed fetch failed")
			h.responder.WriteError(w, errs.NewInternalError("Failed to fetch commits from GitHub"))
			return
		}

		h.responder.WriteData(w, commits)
	}
}
