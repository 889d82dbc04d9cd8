package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/rental-settlement/pkg/commission"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
	"github.com/chris/rental-settlement/pkg/storage/mocks"
)

func newAggregator(t *testing.T, store storage.Storage) *Aggregator {
	t.Helper()
	calc, err := commission.NewCalculator(decimal.NewFromFloat(0.07))
	require.NoError(t, err)
	return NewAggregator(store, calc)
}

func completedAt(ts time.Time) *time.Time { return &ts }

func TestPlatformReport(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mockStore := new(mocks.Storage)
	agg := newAggregator(t, mockStore)

	bookings := []models.Booking{
		{Id: "b-1", TotalAmount: 100_000},
		{Id: "b-2", TotalAmount: 50},
	}
	mockStore.On("ListCompletedBookings", mock.Anything, mock.Anything, mock.Anything, "").Return(bookings, nil).Once()
	mockStore.On("ListWithdrawals", mock.Anything, models.COMPLETED, "").Return([]models.WithdrawalRequest{
		{Id: "w-1", Amount: 93_000, CompletedAt: completedAt(now)},
		{Id: "w-old", Amount: 500, CompletedAt: completedAt(now.Add(-48 * time.Hour))},
		{Id: "w-open", Amount: 700},
	}, nil).Once()
	mockStore.On("ListWithdrawals", mock.Anything, models.PENDING, "").Return([]models.WithdrawalRequest{
		{Id: "w-2", Amount: 46},
	}, nil).Once()
	mockStore.On("ListWithdrawals", mock.Anything, models.FAILED, "").Return([]models.WithdrawalRequest{
		{Id: "w-3", Amount: 1_000},
	}, nil).Once()
	mockStore.On("ListWithdrawals", mock.Anything, models.PROCESSING, "").Return([]models.WithdrawalRequest{}, nil).Once()

	start := now.Add(-24 * time.Hour)
	end := now.Add(24 * time.Hour)
	report, err := agg.PlatformReport(context.Background(), &start, &end)

	require.NoError(t, err)
	assert.Equal(t, int64(100_050), report.TotalRevenue)
	// 7000 from b-1 plus 4 from the half-up rounding of b-2.
	assert.Equal(t, int64(7_004), report.TotalCommissions)
	// Only w-1 completed inside the window; w-open has no completion time.
	assert.Equal(t, int64(93_000), report.TotalPayouts)
	assert.Equal(t, int64(1_046), report.PendingPayouts)
	mockStore.AssertExpectations(t)
}

func TestRealtorReport(t *testing.T) {
	t.Run("Rolls Up History And Balances", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		agg := newAggregator(t, mockStore)

		mockStore.On("GetLedger", mock.Anything, "realtor-1").Return(&models.RealtorLedger{
			RealtorId:        "realtor-1",
			PendingBalance:   93_000,
			AvailableBalance: 1_500,
		}, nil).Once()
		mockStore.On("ListCompletedBookings", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), "realtor-1").Return([]models.Booking{
			{Id: "b-1", RealtorId: "realtor-1", TotalAmount: 100_000},
			{Id: "b-2", RealtorId: "realtor-1", TotalAmount: 200_000},
		}, nil).Once()
		mockStore.On("ListWithdrawals", mock.Anything, models.COMPLETED, "realtor-1").Return([]models.WithdrawalRequest{
			{Id: "w-1", Amount: 186_000},
		}, nil).Once()
		mockStore.On("ListWithdrawals", mock.Anything, models.PENDING, "realtor-1").Return([]models.WithdrawalRequest{
			{Id: "w-2", Amount: 93_000},
		}, nil).Once()
		// w-3 failed after its claim: already out of pending_balance, still owed.
		mockStore.On("ListWithdrawals", mock.Anything, models.FAILED, "realtor-1").Return([]models.WithdrawalRequest{
			{Id: "w-3", Amount: 4_000, RetryCount: 1},
		}, nil).Once()
		mockStore.On("ListWithdrawals", mock.Anything, models.PROCESSING, "realtor-1").Return([]models.WithdrawalRequest{}, nil).Once()

		report, err := agg.RealtorReport(context.Background(), "realtor-1", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(300_000), report.TotalRevenue)
		assert.Equal(t, int64(21_000), report.TotalCommissions)
		assert.Equal(t, int64(279_000), report.TotalEarnings)
		assert.Equal(t, report.TotalRevenue, report.TotalCommissions+report.TotalEarnings)
		assert.Equal(t, int64(186_000), report.CompletedPayouts)
		// Exceeds PendingBalance by the failed withdrawal's 4000.
		assert.Equal(t, int64(97_000), report.PendingPayouts)
		assert.Equal(t, int64(93_000), report.PendingBalance)
		assert.Equal(t, int64(1_500), report.AvailableBalance)
	})

	t.Run("Unknown Realtor", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		agg := newAggregator(t, mockStore)

		mockStore.On("GetLedger", mock.Anything, "ghost").Return(nil, storage.ErrNotFound).Once()

		_, err := agg.RealtorReport(context.Background(), "ghost", nil, nil)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Requires Realtor ID", func(t *testing.T) {
		agg := newAggregator(t, new(mocks.Storage))

		_, err := agg.RealtorReport(context.Background(), "", nil, nil)

		assert.ErrorIs(t, err, storage.ErrValidation)
	})
}

func TestPendingPayouts(t *testing.T) {
	mockStore := new(mocks.Storage)
	agg := newAggregator(t, mockStore)

	queue := []models.WithdrawalRequest{
		{Id: "w-1", Status: models.PENDING},
		{Id: "w-2", Status: models.FAILED},
	}
	mockStore.On("ListPendingWithdrawals", mock.Anything, 2, 10, "realtor-1").Return(queue, nil).Once()

	got, err := agg.PendingPayouts(context.Background(), 2, 10, "realtor-1")

	require.NoError(t, err)
	assert.Equal(t, queue, got)
	mockStore.AssertExpectations(t)
}
