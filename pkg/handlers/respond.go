package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/rental-settlement/pkg/api"
	"github.com/chris/rental-settlement/pkg/disburser"
	"github.com/chris/rental-settlement/pkg/storage"
)

// respondJSON writes payload with the given status. Encoding failures are
// logged; the status line has already been sent by then.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses and writes a uniform
// error body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var pe *disburser.ProviderError
	switch {
	case errors.Is(err, storage.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrRetriesExhausted):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &pe):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	respondJSON(w, status, &api.Error{Code: status, Message: err.Error()})
}

// actorFrom identifies the admin driving the request for the audit trail.
func actorFrom(r *http.Request) string {
	if actor := r.Header.Get("X-Admin-Id"); actor != "" {
		return actor
	}
	return "unknown"
}
