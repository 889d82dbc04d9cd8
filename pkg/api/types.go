// Package api defines the request and response shapes of the HTTP surface.
// Domain models never cross the wire directly; mapping converts between the
// two.
package api

import "time"

// Withdrawal is the API representation of a withdrawal request.
type Withdrawal struct {
	Id              string     `json:"id"`
	RealtorId       string     `json:"realtor_id"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	RetryCount      int32      `json:"retry_count"`
	FailureReason   *string    `json:"failure_reason,omitempty"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	PayoutReference *string    `json:"payout_reference,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// CommissionReport is the platform-wide rollup response.
type CommissionReport struct {
	TotalRevenue     int64 `json:"total_revenue"`
	TotalCommissions int64 `json:"total_commissions"`
	TotalPayouts     int64 `json:"total_payouts"`
	PendingPayouts   int64 `json:"pending_payouts"`
}

// RealtorReport is the per-realtor rollup response.
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

// ProcessPayoutRequest is the body for manually processing a withdrawal.
type ProcessPayoutRequest struct {
	PayoutReference string `json:"payout_reference,omitempty"`
}

// CancelWithdrawalRequest is the body for cancelling a withdrawal. The
// reason is required.
type CancelWithdrawalRequest struct {
	Reason string `json:"reason"`
}

// BatchSuspendRequest is the body for suspending a realtor's active
// bookings. The reason is required.
type BatchSuspendRequest struct {
	RealtorId string `json:"realtor_id"`
	Reason    string `json:"reason"`
}

// BatchResult reports the outcome of a batch operation.
type BatchResult struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// SuspensionResult reports the outcome of a suspension cascade.
type SuspensionResult struct {
	RealtorId  string   `json:"realtor_id"`
	Succeeded  int      `json:"succeeded"`
	Failed     int      `json:"failed"`
	BookingIds []string `json:"booking_ids"`
}

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
