package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
)

// RealtorReport is the per-realtor rollup: lifetime earnings next to the
// live escrow balances. Derived on demand, never stored.
type RealtorReport struct {
	RealtorId        string `json:"realtor_id"`
	TotalRevenue     int64  `json:"total_revenue"`
	TotalCommissions int64  `json:"total_commissions"`
	TotalEarnings    int64  `json:"total_earnings"`
	CompletedPayouts int64  `json:"completed_payouts"`
	PendingPayouts   int64  `json:"pending_payouts"`
	PendingBalance   int64  `json:"pending_balance"`
	AvailableBalance int64  `json:"available_balance"`
}

// Aggregator computes commission and payout rollups from booking and
// withdrawal history.
type Aggregator struct {
	Store      storage.Storage
	Calculator *commission.Calculator
}

// NewAggregator creates a new Aggregator.
func NewAggregator(store storage.Storage, calc *commission.Calculator) *Aggregator {
	return &Aggregator{Store: store, Calculator: calc}
}

// PlatformReport rolls up revenue and commissions over completed bookings in
// the window, completed payouts within the same window, and the live pending
// payout total. Commissions are re-derived per booking so rounding matches
// what settlement actually credited.
func (a *Aggregator) PlatformReport(ctx context.Context, start, end *time.Time) (*models.CommissionReport, error) {
	bookings, err := a.Store.ListCompletedBookings(ctx, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list completed bookings: %w", err)
	}

	report := &models.CommissionReport{}
	for _, b := range bookings {
		split, err := a.Calculator.Split(b.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to split booking %s: %w", b.Id, err)
		}
		report.TotalRevenue += b.TotalAmount
		report.TotalCommissions += split.PlatformCommission
	}

	completed, err := a.Store.ListWithdrawals(ctx, models.COMPLETED, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list completed withdrawals: %w", err)
	}
	for _, w := range completed {
		if (start != nil || end != nil) && !inWindow(w.CompletedAt, start, end) {
			continue
		}
		report.TotalPayouts += w.Amount
	}

	pending, err := a.pendingAmount(ctx, "")
	if err != nil {
		return nil, err
	}
	report.PendingPayouts = pending

	return report, nil
}

// RealtorReport rolls up a single realtor's history in the window alongside
// their current escrow balances. Returns ErrNotFound for a realtor with no
// ledger.
func (a *Aggregator) RealtorReport(ctx context.Context, realtorID string, start, end *time.Time) (*RealtorReport, error) {
	if realtorID == "" {
		return nil, fmt.Errorf("realtor ID is required: %w", storage.ErrValidation)
	}

	ledger, err := a.Store.GetLedger(ctx, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for realtor %s: %w", realtorID, err)
	}

	bookings, err := a.Store.ListCompletedBookings(ctx, start, end, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed bookings for realtor %s: %w", realtorID, err)
	}

	report := &RealtorReport{
		RealtorId:        realtorID,
		PendingBalance:   ledger.PendingBalance,
		AvailableBalance: ledger.AvailableBalance,
	}
	for _, b := range bookings {
		split, err := a.Calculator.Split(b.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to split booking %s: %w", b.Id, err)
		}
		report.TotalRevenue += b.TotalAmount
		report.TotalCommissions += split.PlatformCommission
		report.TotalEarnings += split.RealtorEarnings
	}

	completed, err := a.Store.ListWithdrawals(ctx, models.COMPLETED, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed withdrawals for realtor %s: %w", realtorID, err)
	}
	for _, w := range completed {
		if (start != nil || end != nil) && !inWindow(w.CompletedAt, start, end) {
			continue
		}
		report.CompletedPayouts += w.Amount
	}

	// PendingBalance alone understates what is owed: a FAILED withdrawal's
	// amount left the pending balance at claim time but is still unpaid.
	pending, err := a.pendingAmount(ctx, realtorID)
	if err != nil {
		return nil, err
	}
	report.PendingPayouts = pending

	return report, nil
}

// PendingPayouts returns the PENDING and FAILED withdrawal queue, oldest
// first, for admin review.
func (a *Aggregator) PendingPayouts(ctx context.Context, page, limit int, realtorID string) ([]models.WithdrawalRequest, error) {
	withdrawals, err := a.Store.ListPendingWithdrawals(ctx, page, limit, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending withdrawals: %w", err)
	}
	return withdrawals, nil
}

// pendingAmount sums every withdrawal whose funds are still owed: queued,
// awaiting retry, or mid-disbursement.
func (a *Aggregator) pendingAmount(ctx context.Context, realtorID string) (int64, error) {
	var total int64
	for _, status := range []models.WithdrawalStatus{models.PENDING, models.FAILED, models.PROCESSING} {
		withdrawals, err := a.Store.ListWithdrawals(ctx, status, realtorID)
		if err != nil {
			return 0, fmt.Errorf("failed to list %s withdrawals: %w", status, err)
		}
		for _, w := range withdrawals {
			total += w.Amount
		}
	}
	return total, nil
}

func inWindow(ts, start, end *time.Time) bool {
	if ts == nil {
		return false
	}
	if start != nil && ts.Before(*start) {
		return false
	}
	if end != nil && ts.After(*end) {
		return false
	}
	return true
}
