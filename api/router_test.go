package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/services"
)

var apiTestDBCounter int64

// testEnv wires the full router against an in-memory database
type testEnv struct {
	router http.Handler
	db     *gorm.DB
	data   database.Database
}

// newTestEnv builds the router the same way the server does, minus CORS.
// overrides lands on top of the default test config; the test-only key
// GITHUB_BASE_URL points the commit feed at a stub upstream.
func newTestEnv(t *testing.T, overrides map[string]string) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&apiTestDBCounter, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, database.AutoMigrate(gdb))

	cfg := map[string]string{
		"JWT_SECRET":     "test-secret",
		"ADMIN_EMAIL":    "admin@test.local",
		"ADMIN_PASSWORD": "letmein",
	}
	for key, value := range overrides {
		cfg[key] = value
	}

	var feedOpts []func(*services.CommitFeed)
	if base := cfg["GITHUB_BASE_URL"]; base != "" {
		feedOpts = append(feedOpts, services.WithBaseURL(base))
	}
	feed := services.NewCommitFeed("", feedOpts...)

	data := database.New(gdb)
	handlers := initializeHandlers(data, feed, cfg)
	authMiddleware := newAuthMiddleware([]byte(cfg["JWT_SECRET"]))

	router := chi.NewRouter()
	setupFrontendRoutes(router, handlers, authMiddleware)

	return &testEnv{router: router, db: gdb, data: data}
}

// testEnvelope mirrors the response envelope with the data left raw
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token ...string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token[0])
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope),
		"response body: %s", recorder.Body.String())
	return recorder, envelope
}

func decodeData(t *testing.T, envelope testEnvelope, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}
