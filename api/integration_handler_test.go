package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hariship/apps-dashboard-backend/models"
)

func TestIntegrationLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, envelope := env.do(t, http.MethodPost, "/api/integrations", map[string]any{
		"name":        "Supabase",
		"slug":        "supabase",
		"description": "PostgreSQL hosting",
		"url":         "https://supabase.com",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var integration models.Integration
	decodeData(t, envelope, &integration)
	require.NotZero(t, integration.ID)
	require.Equal(t, "operational", integration.Status)
	require.True(t, integration.Enabled)

	disabled := false
	recorder, envelope = env.do(t, http.MethodPut, fmt.Sprintf("/api/integrations/%d", integration.ID), map[string]any{
		"name":        "Supabase",
		"slug":        "supabase",
		"description": "PostgreSQL hosting",
		"url":         "https://supabase.com",
		"status":      "maintenance",
		"enabled":     disabled,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.Integration
	decodeData(t, envelope, &updated)
	require.Equal(t, "maintenance", updated.Status)
	require.False(t, updated.Enabled)

	recorder, envelope = env.do(t, http.MethodDelete, fmt.Sprintf("/api/integrations/%d", integration.ID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Integration deleted successfully", envelope.Message)

	recorder, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/integrations/%d", integration.ID), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateIntegrationRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	recorder, _ := env.do(t, http.MethodPost, "/api/integrations", map[string]any{
		"name":        "Thing",
		"slug":        "thing",
		"description": "d",
		"url":         "https://example.com",
		"status":      "exploded",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
