package storage

import (
	"context"
	"time"

	"github.com/chris/rental-settlement/pkg/models"
)

// WithdrawalReader defines the interface for reading withdrawal requests.
type WithdrawalReader interface {
	// GetWithdrawal retrieves a withdrawal request by its ID.
	GetWithdrawal(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error)

	// ListPendingWithdrawals returns PENDING and FAILED requests ordered
	// oldest-first, optionally filtered by realtor, sliced by page/limit.
	ListPendingWithdrawals(ctx context.Context, page, limit int, realtorID string) ([]models.WithdrawalRequest, error)

	// ListRetryableWithdrawals returns FAILED requests whose retry count is
	// below maxRetries.
	ListRetryableWithdrawals(ctx context.Context, maxRetries int32) ([]models.WithdrawalRequest, error)

	// ListWithdrawals returns requests optionally filtered by status and realtor.
	ListWithdrawals(ctx context.Context, status models.WithdrawalStatus, realtorID string) ([]models.WithdrawalRequest, error)

	// GetStuckWithdrawals returns requests that have sat in PROCESSING for
	// longer than maxAge, i.e. claims orphaned by a crash mid-disbursement.
	GetStuckWithdrawals(ctx context.Context, maxAge time.Duration) ([]models.WithdrawalRequest, error)
}

// WithdrawalManager defines the privileged interface that drives withdrawal
// state transitions. Every transition is a conditional write: the condition
// failing surfaces as ErrConflict (or ErrInsufficientFunds for ledger
// violations) with no mutation applied.
type WithdrawalManager interface {
	// ClaimWithdrawal atomically moves a request from expectedStatus
	// (PENDING or FAILED) to PROCESSING. A claim from PENDING reserves the
	// funds by debiting the realtor's pending balance in the same write; a
	// claim from FAILED additionally requires retry_count < maxRetries.
	// Exactly one concurrent caller wins; losers get ErrConflict.
	ClaimWithdrawal(ctx context.Context, w *models.WithdrawalRequest, expectedStatus models.WithdrawalStatus, maxRetries int32) error

	// CompleteWithdrawal moves a PROCESSING request to COMPLETED, recording
	// the provider's payout reference and the completion time.
	CompleteWithdrawal(ctx context.Context, withdrawalID, payoutReference string) error

	// FailWithdrawal moves a PROCESSING request back to FAILED, recording
	// the failure reason and incrementing the retry count.
	FailWithdrawal(ctx context.Context, withdrawalID, reason string) error

	// CancelWithdrawal moves a PENDING or FAILED request to CANCELLED and
	// releases the held amount to the realtor's available balance.
	CancelWithdrawal(ctx context.Context, withdrawalID, reason string) error
}

// WithdrawalStore combines the reader and manager interfaces.
type WithdrawalStore interface {
	WithdrawalReader
	WithdrawalManager
}
