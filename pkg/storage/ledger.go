package storage

import (
	"context"

	"github.com/chris/rental-settlement/pkg/models"
)

// LedgerStore defines the interface for a realtor's escrow ledger.
type LedgerStore interface {
	// GetLedger retrieves a realtor's ledger by their realtor ID.
	GetLedger(ctx context.Context, realtorID string) (*models.RealtorLedger, error)

	// CreditFromBooking credits a realtor's pending balance with their
	// earnings from a completed booking and creates the withdrawal request
	// for the same amount. It is idempotent per booking: a second call with
	// the same booking ID is a no-op returning the original credit record.
	CreditFromBooking(ctx context.Context, credit *models.BookingCredit) (*models.BookingCredit, error)

	// GetBookingCredit retrieves the credit record for a booking, or
	// ErrNotFound if the booking has not been settled.
	GetBookingCredit(ctx context.Context, bookingID string) (*models.BookingCredit, error)
}
