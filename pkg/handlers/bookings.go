package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/rental-settlement/pkg/api"
	"github.com/chris/rental-settlement/pkg/mapping"
	"github.com/chris/rental-settlement/pkg/storage"
	"github.com/chris/rental-settlement/pkg/suspension"
)

// SuspensionService defines the cascade operation the booking handlers
// depend on.
type SuspensionService interface {
	SuspendRealtorBookings(ctx context.Context, realtorID, reason, actor string) (*suspension.Result, error)
}

// BookingsHandler holds the dependencies for booking suspension handlers.
type BookingsHandler struct {
	Suspension SuspensionService
}

// NewBookingsHandler creates a new BookingsHandler.
func NewBookingsHandler(suspensionSvc SuspensionService) *BookingsHandler {
	return &BookingsHandler{Suspension: suspensionSvc}
}

// BatchSuspend handles PUT /bookings/batch-suspend, flagging every active
// booking held by the named realtor.
func (h *BookingsHandler) BatchSuspend(w http.ResponseWriter, r *http.Request) {
	var body api.BatchSuspendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", storage.ErrValidation))
		return
	}

	result, err := h.Suspension.SuspendRealtorBookings(r.Context(), body.RealtorId, body.Reason, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiSuspensionResult(result))
}
