package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hariship/apps-dashboard-backend/errs"
)

// envelope is the shape every endpoint responds with
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a successful envelope carrying data
func (r Responder) WriteData(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// WriteCreated writes a successful envelope carrying data with status 201
func (r Responder) WriteCreated(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// WriteMessage writes a successful envelope carrying only a message
func (r Responder) WriteMessage(w http.ResponseWriter, message string) {
	r.writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

// WriteError maps err onto the failure envelope. Expected errors carry their
// own status code; anything else is logged and surfaces as a generic 500 with
// no detail beyond the short message.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Error:   "Internal Server Error",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	r.writeJSON(w, apiErr.StatusCode, envelope{
		Success: false,
		Error:   apiErr.Error(),
	})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
