package settlement

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
	"github.com/chris/rental-settlement/pkg/storage/mocks"
)

func newCalculator(t *testing.T) *commission.Calculator {
	t.Helper()
	calc, err := commission.NewCalculator(decimal.NewFromFloat(0.07))
	require.NoError(t, err)
	return calc
}

func TestSettleBooking(t *testing.T) {
	event := &CompletedBookingEvent{
		BookingId:   "booking-1",
		RealtorId:   "realtor-1",
		TotalAmount: 100_000,
	}

	t.Run("Splits And Credits", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		settler := NewSettler(mockStore, newCalculator(t))

		mockStore.On("CreditFromBooking", mock.Anything, mock.MatchedBy(func(c *models.BookingCredit) bool {
			return c.BookingId == "booking-1" &&
				c.PlatformCommission == 7_000 &&
				c.RealtorEarnings == 93_000 &&
				c.PlatformCommission+c.RealtorEarnings == c.TotalAmount
		})).Return(&models.BookingCredit{BookingId: "booking-1", WithdrawalId: "w-1"}, nil)

		credit, err := settler.SettleBooking(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, "w-1", credit.WithdrawalId)
		mockStore.AssertExpectations(t)
	})

	t.Run("Missing IDs", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		settler := NewSettler(mockStore, newCalculator(t))

		_, err := settler.SettleBooking(context.Background(), &CompletedBookingEvent{TotalAmount: 10})

		assert.ErrorIs(t, err, storage.ErrValidation)
		mockStore.AssertNotCalled(t, "CreditFromBooking", mock.Anything, mock.Anything)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		settler := NewSettler(mockStore, newCalculator(t))

		_, err := settler.SettleBooking(context.Background(), &CompletedBookingEvent{
			BookingId: "b", RealtorId: "r", TotalAmount: -5,
		})

		assert.ErrorIs(t, err, commission.ErrInvalidAmount)
	})
}
