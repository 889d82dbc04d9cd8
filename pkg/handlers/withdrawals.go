package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chris/rental-settlement/pkg/api"
	"github.com/chris/rental-settlement/pkg/mapping"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/payouts"
	"github.com/chris/rental-settlement/pkg/storage"
)

// PayoutService defines the payout lifecycle operations the withdrawal
// handlers depend on.
type PayoutService interface {
	ProcessWithdrawal(ctx context.Context, withdrawalID, payoutReference, actor string) (*models.WithdrawalRequest, error)
	RetryFailedWithdrawals(ctx context.Context, actor string) (*payouts.BatchResult, error)
	CancelWithdrawal(ctx context.Context, withdrawalID, reason, actor string) error
}

// WithdrawalsHandler holds the dependencies for withdrawal lifecycle
// handlers.
type WithdrawalsHandler struct {
	Store   storage.WithdrawalReader
	Payouts PayoutService
}

// NewWithdrawalsHandler creates a new WithdrawalsHandler.
func NewWithdrawalsHandler(store storage.WithdrawalReader, payoutSvc PayoutService) *WithdrawalsHandler {
	return &WithdrawalsHandler{Store: store, Payouts: payoutSvc}
}

// ListWithdrawals handles GET /withdrawals with optional status and
// realtorId query parameters.
func (h *WithdrawalsHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := models.WithdrawalStatus(r.URL.Query().Get("status"))
	if status != "" && !validStatus(status) {
		respondError(w, fmt.Errorf("unknown status %q: %w", status, storage.ErrValidation))
		return
	}

	withdrawals, err := h.Store.ListWithdrawals(r.Context(), status, r.URL.Query().Get("realtorId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiWithdrawals(withdrawals))
}

// ProcessWithdrawal handles the manual payout trigger. The body is optional
// and may carry an external payout reference to pass through to the
// disbursement channel.
func (h *WithdrawalsHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	var body api.ProcessPayoutRequest
	if err := decodeOptional(r, &body); err != nil {
		respondError(w, err)
		return
	}

	withdrawal, err := h.Payouts.ProcessWithdrawal(r.Context(), chi.URLParam(r, "withdrawalId"), body.PayoutReference, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiWithdrawal(withdrawal))
}

// CancelWithdrawal handles POST /withdrawals/cancel/{withdrawalId}. The
// body must carry a non-empty reason.
func (h *WithdrawalsHandler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	var body api.CancelWithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", storage.ErrValidation))
		return
	}

	if err := h.Payouts.CancelWithdrawal(r.Context(), chi.URLParam(r, "withdrawalId"), body.Reason, actorFrom(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RetryAll handles POST /withdrawals/retry-all, sweeping every retryable
// FAILED withdrawal.
func (h *WithdrawalsHandler) RetryAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.Payouts.RetryFailedWithdrawals(r.Context(), actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiBatchResult(result))
}

func validStatus(s models.WithdrawalStatus) bool {
	switch s {
	case models.PENDING, models.PROCESSING, models.FAILED, models.COMPLETED, models.CANCELLED:
		return true
	}
	return false
}

// decodeOptional decodes a JSON body, treating an empty body as the zero
// value.
func decodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", storage.ErrValidation)
	}
	return nil
}
