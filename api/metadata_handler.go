package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type metadataHandler struct {
	responder Responder
}

func newMetadataHandler() metadataHandler {
	logger := log.With().Str("handlerName", "metadataHandler").Logger()
	return metadataHandler{responder: NewResponder(logger)}
}

// siteMetadata is the static site descriptor; no store access involved
type siteMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	BrandName   string   `json:"brandName"`
	Tagline     string   `json:"tagline"`
}

func (h metadataHandler) getMetadata() http.HandlerFunc {
	metadata := siteMetadata{
		Title:       "Apps Dashboard - Portfolio Projects",
		Description: "Portfolio dashboard showcasing development projects with architecture diagrams and technology stacks",
		Keywords:    []string{"portfolio", "projects", "developer", "dashboard", "next.js", "react"},
		BrandName:   "Apps Dashboard",
		Tagline:     "APPS DASHBOARD",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, metadata)
	}
}
