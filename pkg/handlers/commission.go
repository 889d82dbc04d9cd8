package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chris/rental-settlement/pkg/mapping"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/reporting"
	"github.com/chris/rental-settlement/pkg/storage"
)

// ReportService defines the reporting operations the commission handlers
// depend on.
type ReportService interface {
	PlatformReport(ctx context.Context, start, end *time.Time) (*models.CommissionReport, error)
	RealtorReport(ctx context.Context, realtorID string, start, end *time.Time) (*reporting.RealtorReport, error)
	PendingPayouts(ctx context.Context, page, limit int, realtorID string) ([]models.WithdrawalRequest, error)
}

// CommissionHandler holds the dependencies for commission reporting handlers.
type CommissionHandler struct {
	Reports ReportService
}

// NewCommissionHandler creates a new CommissionHandler.
func NewCommissionHandler(reports ReportService) *CommissionHandler {
	return &CommissionHandler{Reports: reports}
}

// GetPlatformReport handles GET /commission/platform-report. The optional
// startDate and endDate query parameters are RFC 3339 timestamps bounding
// the window.
func (h *CommissionHandler) GetPlatformReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := windowParams(r)
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := h.Reports.PlatformReport(r.Context(), start, end)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiCommissionReport(report))
}

// GetRealtorReport handles GET /commission/realtor/{realtorId}, with the
// same optional window parameters as the platform report.
func (h *CommissionHandler) GetRealtorReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := windowParams(r)
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := h.Reports.RealtorReport(r.Context(), chi.URLParam(r, "realtorId"), start, end)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiRealtorReport(report))
}

// ListPendingPayouts handles GET /commission/pending-payouts with optional
// page, limit, and realtor_id query parameters.
func (h *CommissionHandler) ListPendingPayouts(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		respondError(w, err)
		return
	}
	limit, err := intParam(r, "limit", 20)
	if err != nil {
		respondError(w, err)
		return
	}

	withdrawals, err := h.Reports.PendingPayouts(r.Context(), page, limit, r.URL.Query().Get("realtorId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiWithdrawals(withdrawals))
}

func windowParams(r *http.Request) (start, end *time.Time, err error) {
	if start, err = timeParam(r, "startDate"); err != nil {
		return nil, nil, err
	}
	if end, err = timeParam(r, "endDate"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func timeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC 3339 timestamp: %w", name, storage.ErrValidation)
	}
	return &ts, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer: %w", name, storage.ErrValidation)
	}
	return n, nil
}
