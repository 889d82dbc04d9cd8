package mapping

import (
	"github.com/chris/rental-settlement/pkg/api"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/payouts"
	"github.com/chris/rental-settlement/pkg/reporting"
	"github.com/chris/rental-settlement/pkg/suspension"
)

// ToApiWithdrawal converts a domain WithdrawalRequest to an API Withdrawal.
func ToApiWithdrawal(w *models.WithdrawalRequest) *api.Withdrawal {
	return &api.Withdrawal{
		Id:              w.Id,
		RealtorId:       w.RealtorId,
		Amount:          w.Amount,
		Status:          string(w.Status),
		RetryCount:      w.RetryCount,
		FailureReason:   w.FailureReason,
		CancelReason:    w.CancelReason,
		PayoutReference: w.PayoutReference,
		RequestedAt:     w.RequestedAt,
		UpdatedAt:       w.UpdatedAt,
		CompletedAt:     w.CompletedAt,
	}
}

// ToApiWithdrawals converts a slice of domain withdrawal requests.
func ToApiWithdrawals(ws []models.WithdrawalRequest) []*api.Withdrawal {
	out := make([]*api.Withdrawal, len(ws))
	for i := range ws {
		out[i] = ToApiWithdrawal(&ws[i])
	}
	return out
}

// ToApiCommissionReport converts a domain CommissionReport to its API form.
func ToApiCommissionReport(r *models.CommissionReport) *api.CommissionReport {
	return &api.CommissionReport{
		TotalRevenue:     r.TotalRevenue,
		TotalCommissions: r.TotalCommissions,
		TotalPayouts:     r.TotalPayouts,
		PendingPayouts:   r.PendingPayouts,
	}
}

// ToApiRealtorReport converts a realtor rollup to its API form.
func ToApiRealtorReport(r *reporting.RealtorReport) *api.RealtorReport {
	return &api.RealtorReport{
		RealtorId:        r.RealtorId,
		TotalRevenue:     r.TotalRevenue,
		TotalCommissions: r.TotalCommissions,
		TotalEarnings:    r.TotalEarnings,
		CompletedPayouts: r.CompletedPayouts,
		PendingPayouts:   r.PendingPayouts,
		PendingBalance:   r.PendingBalance,
		AvailableBalance: r.AvailableBalance,
	}
}

// ToApiBatchResult converts a batch outcome to its API form.
func ToApiBatchResult(r *payouts.BatchResult) *api.BatchResult {
	return &api.BatchResult{
		Processed:  r.Processed,
		Successful: r.Successful,
		Failed:     r.Failed,
	}
}

// ToApiSuspensionResult converts a cascade outcome to its API form.
func ToApiSuspensionResult(r *suspension.Result) *api.SuspensionResult {
	return &api.SuspensionResult{
		RealtorId:  r.RealtorId,
		Succeeded:  r.Succeeded,
		Failed:     r.Failed,
		BookingIds: r.BookingIds,
	}
}
