package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/models"
)

func TestGetPublishedUpdates(t *testing.T) {
	env := newTestEnv(t, nil)

	project := models.Project{
		Name: "Alpha", Slug: "alpha", Description: "d",
		LiveURL: "https://example.com/alpha", SourceURL: "https://github.com/example/alpha",
		Status: "active",
	}
	require.NoError(t, env.db.Create(&project).Error)

	other := models.Project{
		Name: "Beta", Slug: "beta", Description: "d",
		LiveURL: "https://example.com/beta", SourceURL: "https://github.com/example/beta",
		Status: "active",
	}
	require.NoError(t, env.db.Create(&other).Error)

	rows := []models.Update{
		{ProjectID: project.ID, Title: "Shipped", Content: "c", UpdateType: "feature", Published: true},
		{ProjectID: project.ID, Title: "Draft", Content: "c", UpdateType: "feature", Published: false},
		{ProjectID: other.ID, Title: "Other", Content: "c", UpdateType: "bugfix", Published: true},
	}
	for i := range rows {
		require.NoError(t, env.db.Create(&rows[i]).Error)
	}

	recorder, envelope := env.do(t, http.MethodGet, "/api/updates", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var all []database.PublishedUpdate
	decodeData(t, envelope, &all)
	require.Len(t, all, 2)

	recorder, envelope = env.do(t, http.MethodGet, fmt.Sprintf("/api/updates?project_id=%d", project.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var filtered []database.PublishedUpdate
	decodeData(t, envelope, &filtered)
	require.Len(t, filtered, 1)
	require.Equal(t, "Shipped", filtered[0].Title)
	require.Equal(t, "Alpha", filtered[0].ProjectName)
}

func TestGetPublishedUpdatesRejectsBadFilter(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, envelope := env.do(t, http.MethodGet, "/api/updates?project_id=abc", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid project_id", envelope.Error)
}

func TestGetMetadata(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, envelope := env.do(t, http.MethodGet, "/api/metadata", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var metadata siteMetadata
	decodeData(t, envelope, &metadata)
	require.Equal(t, "Apps Dashboard", metadata.BrandName)
	require.Equal(t, "APPS DASHBOARD", metadata.Tagline)
	require.NotEmpty(t, metadata.Keywords)
}
