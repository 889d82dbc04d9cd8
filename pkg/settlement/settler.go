package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
)

// CompletedBookingEvent is the payload delivered by the booking service when
// a booking reaches its terminal completed state. Delivery is expected
// exactly-once but the settler tolerates at-least-once.
type CompletedBookingEvent struct {
	BookingId   string `json:"booking_id"`
	RealtorId   string `json:"realtor_id"`
	TotalAmount int64  `json:"total_amount"`
}

// Settler turns completed bookings into escrow credits and withdrawal
// requests.
type Settler struct {
	Store      storage.LedgerStore
	Calculator *commission.Calculator
}

// NewSettler creates a new Settler.
func NewSettler(store storage.LedgerStore, calc *commission.Calculator) *Settler {
	return &Settler{Store: store, Calculator: calc}
}

// SettleBooking splits the booking amount and credits the realtor's escrow.
// Crediting is idempotent per booking, so redelivered events settle to the
// same credit record.
func (s *Settler) SettleBooking(ctx context.Context, event *CompletedBookingEvent) (*models.BookingCredit, error) {
	if event.BookingId == "" || event.RealtorId == "" {
		return nil, fmt.Errorf("booking and realtor IDs are required: %w", storage.ErrValidation)
	}

	split, err := s.Calculator.Split(event.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to split booking amount: %w", err)
	}

	credit, err := s.Store.CreditFromBooking(ctx, &models.BookingCredit{
		BookingId:          event.BookingId,
		RealtorId:          event.RealtorId,
		TotalAmount:        event.TotalAmount,
		PlatformCommission: split.PlatformCommission,
		RealtorEarnings:    split.RealtorEarnings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit escrow for booking %s: %w", event.BookingId, err)
	}

	slog.Log(ctx, slog.LevelInfo, "booking settled",
		"booking_id", credit.BookingId,
		"realtor_id", credit.RealtorId,
		"commission", credit.PlatformCommission,
		"earnings", credit.RealtorEarnings,
		"withdrawal_id", credit.WithdrawalId,
	)

	return credit, nil
}
