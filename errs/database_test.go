package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDatabaseErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"postgres duplicate key", errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`), http.StatusConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: projects.slug"), http.StatusConflict},
		{"postgres fk", errors.New("update or delete violates foreign key constraint"), http.StatusBadRequest},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("failed to connect to database: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tc.cause)

			var apiErr *ApiErr
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *ApiErr, got %T", err)
			}
			if apiErr.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tc.wantStatus)
			}
			if apiErr.Cause == nil {
				t.Error("expected cause to be preserved")
			}
		})
	}
}
