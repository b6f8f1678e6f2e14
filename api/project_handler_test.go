package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hariship/apps-dashboard-backend/models"
)

func validProjectBody(slug string) map[string]any {
	return map[string]any{
		"name":        "Test Project",
		"slug":        slug,
		"description": "A project used in tests",
		"live_url":    "https://example.com/" + slug,
		"source_url":  "https://github.com/example/" + slug,
	}
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)

	// Create a technology, link a project to it
	recorder, envelope := env.do(t, http.MethodPost, "/api/technologies", map[string]any{
		"name": "Rust", "slug": "rust", "category": "language", "color": "#DEA584",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.True(t, envelope.Success)

	var technology models.Technology
	decodeData(t, envelope, &technology)
	require.NotZero(t, technology.ID)

	body := validProjectBody("test-project")
	body["technology_ids"] = []uint{technology.ID}
	recorder, envelope = env.do(t, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var project models.Project
	decodeData(t, envelope, &project)
	require.NotZero(t, project.ID)
	require.Equal(t, "active", project.Status)
	require.Len(t, project.Technologies, 1)

	// The technology is now in use and must refuse deletion
	recorder, envelope = env.do(t, http.MethodDelete, fmt.Sprintf("/api/technologies/%d", technology.ID), nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.False(t, envelope.Success)
	require.Equal(t, "Cannot delete technology that is used in projects", envelope.Error)

	// Full replacement keeps the identity but rewrites everything else
	replacement := validProjectBody("test-project")
	replacement["name"] = "Renamed Project"
	replacement["status"] = "maintenance"
	replacement["technology_ids"] = []uint{}
	recorder, envelope = env.do(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), replacement)
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.Project
	decodeData(t, envelope, &updated)
	require.Equal(t, project.ID, updated.ID)
	require.Equal(t, "Renamed Project", updated.Name)
	require.Equal(t, "maintenance", updated.Status)
	require.Empty(t, updated.Technologies)

	// With the link gone the technology deletes cleanly
	recorder, envelope = env.do(t, http.MethodDelete, fmt.Sprintf("/api/technologies/%d", technology.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Technology deleted successfully", envelope.Message)

	// And so does the project
	recorder, envelope = env.do(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Project deleted successfully", envelope.Message)

	recorder, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetAllProjectsEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, envelope := env.do(t, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, envelope.Success)
	require.JSONEq(t, "[]", string(envelope.Data))
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	body := validProjectBody("missing-name")
	delete(body, "name")
	recorder, envelope := env.do(t, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "missing required field: name", envelope.Error)

	body = validProjectBody("bad-status")
	body["status"] = "defunct"
	recorder, _ = env.do(t, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateProjectDuplicateSlugConflicts(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, _ := env.do(t, http.MethodPost, "/api/projects", validProjectBody("taken"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, envelope := env.do(t, http.MethodPost, "/api/projects", validProjectBody("taken"))
	require.Equal(t, http.StatusConflict, recorder.Code)
	require.False(t, envelope.Success)
}

func TestUpdateMissingProjectLeavesNothingBehind(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, _ := env.do(t, http.MethodPut, "/api/projects/424242", validProjectBody("ghost"))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var total int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&total).Error)
	require.Zero(t, total)
}

func TestProjectInvalidIDParam(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, envelope := env.do(t, http.MethodGet, "/api/projects/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid projectID", envelope.Error)
}
