package models

import (
	"time"
)

// WithdrawalStatus defines the possible states of a withdrawal request.
type WithdrawalStatus string

const (
	PENDING    WithdrawalStatus = "PENDING"
	PROCESSING WithdrawalStatus = "PROCESSING"
	FAILED     WithdrawalStatus = "FAILED"
	COMPLETED  WithdrawalStatus = "COMPLETED"
	CANCELLED  WithdrawalStatus = "CANCELLED"
)

// BookingStatus defines the possible states of a booking as seen by the
// settlement engine. Bookings are owned by an upstream service; only
// COMPLETED and SUSPENDED matter here.
type BookingStatus string

const (
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingSuspended BookingStatus = "SUSPENDED"
)

// WithdrawalRequest represents a single payout request for a realtor's
// escrowed earnings. It is created once per settlement event and retried
// in place; it becomes immutable once COMPLETED or CANCELLED.
type WithdrawalRequest struct {
	Id              string           `dynamodbav:"id"`
	RealtorId       string           `dynamodbav:"realtor_id"`
	Amount          int64            `dynamodbav:"amount"`
	Status          WithdrawalStatus `dynamodbav:"status"`
	RetryCount      int32            `dynamodbav:"retry_count"`
	FailureReason   *string          `dynamodbav:"failure_reason,omitempty"`
	CancelReason    *string          `dynamodbav:"cancel_reason,omitempty"`
	PayoutReference *string          `dynamodbav:"payout_reference,omitempty"`
	RequestedAt     time.Time        `dynamodbav:"requested_at"`
	UpdatedAt       time.Time        `dynamodbav:"updated_at"`
	CompletedAt     *time.Time       `dynamodbav:"completed_at,omitempty"`
	GSI1PK          string           `dynamodbav:"gsi1pk"`
}

// RealtorLedger holds a realtor's escrowed funds. PendingBalance is credited
// on booking settlement and debited when a withdrawal is claimed for
// disbursement; AvailableBalance receives funds released by cancellation.
type RealtorLedger struct {
	RealtorId        string    `json:"realtor_id" dynamodbav:"realtor_id"`
	PendingBalance   int64     `json:"pending_balance" dynamodbav:"pending_balance"`
	AvailableBalance int64     `json:"available_balance" dynamodbav:"available_balance"`
	Version          int64     `json:"version" dynamodbav:"version"`
	CreatedAt        time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// BookingCredit is the idempotency record for a booking's escrow credit.
// Its conditional creation is what guarantees a booking credits escrow at
// most once, no matter how many times the completion event is delivered.
type BookingCredit struct {
	BookingId          string    `dynamodbav:"booking_id"`
	RealtorId          string    `dynamodbav:"realtor_id"`
	TotalAmount        int64     `dynamodbav:"total_amount"`
	PlatformCommission int64     `dynamodbav:"platform_commission"`
	RealtorEarnings    int64     `dynamodbav:"realtor_earnings"`
	WithdrawalId       string    `dynamodbav:"withdrawal_id"`
	CreditedAt         time.Time `dynamodbav:"credited_at"`
}

// Booking mirrors the upstream booking record. The engine reads completed
// bookings for reporting and flags active ones during a suspension cascade.
type Booking struct {
	Id              string        `dynamodbav:"id"`
	RealtorId       string        `dynamodbav:"realtor_id"`
	GuestId         string        `dynamodbav:"guest_id"`
	TotalAmount     int64         `dynamodbav:"total_amount"`
	Status          BookingStatus `dynamodbav:"status"`
	SuspendedReason *string       `dynamodbav:"suspended_reason,omitempty"`
	CheckIn         time.Time     `dynamodbav:"check_in"`
	CompletedAt     *time.Time    `dynamodbav:"completed_at,omitempty"`
	UpdatedAt       time.Time     `dynamodbav:"updated_at"`
}

// CommissionReport is a derived rollup over booking and withdrawal history.
// It is never stored.
type CommissionReport struct {
	TotalRevenue     int64 `json:"total_revenue"`
	TotalCommissions int64 `json:"total_commissions"`
	TotalPayouts     int64 `json:"total_payouts"`
	PendingPayouts   int64 `json:"pending_payouts"`
}

// AuditEntry records an admin-triggered mutation, successful or not.
type AuditEntry struct {
	Id        string    `dynamodbav:"id"`
	Actor     string    `dynamodbav:"actor"`
	Action    string    `dynamodbav:"action"`
	Target    string    `dynamodbav:"target"`
	Outcome   string    `dynamodbav:"outcome"`
	Detail    string    `dynamodbav:"detail,omitempty"`
	Timestamp time.Time `dynamodbav:"timestamp"`
	GSI1PK    string    `dynamodbav:"gsi1pk"`
}

// Terminal reports whether no further transitions are permitted.
func (s WithdrawalStatus) Terminal() bool {
	return s == COMPLETED || s == CANCELLED
}
