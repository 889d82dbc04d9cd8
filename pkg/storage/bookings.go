package storage

import (
	"context"
	"time"

	"github.com/chris/rental-settlement/pkg/models"
)

// BookingStore defines the interface over upstream booking records. The
// engine reads completed bookings for reporting and flags active ones
// during a suspension cascade.
type BookingStore interface {
	// GetBooking retrieves a booking by its ID.
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// ListActiveBookingsByRealtor returns a realtor's ACTIVE bookings.
	ListActiveBookingsByRealtor(ctx context.Context, realtorID string) ([]models.Booking, error)

	// FlagBookingSuspended marks a single active booking SUSPENDED with the
	// given reason. Returns ErrConflict if the booking is no longer active.
	FlagBookingSuspended(ctx context.Context, bookingID, reason string) error

	// ListCompletedBookings returns COMPLETED bookings, optionally bounded
	// by completion time and filtered by realtor.
	ListCompletedBookings(ctx context.Context, start, end *time.Time, realtorID string) ([]models.Booking, error)
}
