package suspension

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/notifier"
	notifierMocks "github.com/chris/rental-settlement/pkg/notifier/mocks"
	"github.com/chris/rental-settlement/pkg/storage"
	storageMocks "github.com/chris/rental-settlement/pkg/storage/mocks"
)

func activeBookings(n int) []models.Booking {
	bookings := make([]models.Booking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, models.Booking{
			Id:        fmt.Sprintf("booking-%d", i+1),
			RealtorId: "realtor-1",
			GuestId:   fmt.Sprintf("guest-%d", i+1),
			Status:    models.BookingActive,
		})
	}
	return bookings
}

func TestSuspendRealtorBookings(t *testing.T) {
	t.Run("Flags All And Notifies Guests", func(t *testing.T) {
		mockStore := new(storageMocks.Storage)
		mockNotifier := new(notifierMocks.Notifier)
		cascader := NewCascader(mockStore, mockNotifier)

		mockStore.On("ListActiveBookingsByRealtor", mock.Anything, "realtor-1").Return(activeBookings(3), nil).Once()
		mockStore.On("FlagBookingSuspended", mock.Anything, mock.Anything, "fraud investigation").Return(nil).Times(3)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(n *notifier.Notice) bool {
			return n.Type == notifier.BookingSuspendedNotice && n.RecipientId != ""
		})).Return(nil).Times(3)
		mockStore.On("RecordAudit", mock.Anything, mock.Anything).Return(nil)

		result, err := cascader.SuspendRealtorBookings(context.Background(), "realtor-1", "fraud investigation", "admin-1")

		require.NoError(t, err)
		assert.Equal(t, 3, result.Succeeded)
		assert.Equal(t, 0, result.Failed)
		assert.Len(t, result.BookingIds, 3)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("One Flag Failure Skips Only That Booking", func(t *testing.T) {
		mockStore := new(storageMocks.Storage)
		mockNotifier := new(notifierMocks.Notifier)
		cascader := NewCascader(mockStore, mockNotifier)

		mockStore.On("ListActiveBookingsByRealtor", mock.Anything, "realtor-1").Return(activeBookings(5), nil).Once()
		// booking-3 was completed between the listing and the flag.
		mockStore.On("FlagBookingSuspended", mock.Anything, "booking-3", "fraud investigation").Return(storage.ErrConflict).Once()
		mockStore.On("FlagBookingSuspended", mock.Anything, mock.Anything, "fraud investigation").Return(nil).Times(4)
		mockNotifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Times(4)
		mockStore.On("RecordAudit", mock.Anything, mock.Anything).Return(nil)

		result, err := cascader.SuspendRealtorBookings(context.Background(), "realtor-1", "fraud investigation", "admin-1")

		require.NoError(t, err)
		assert.Equal(t, 4, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		assert.NotContains(t, result.BookingIds, "booking-3")
		mockNotifier.AssertNumberOfCalls(t, "Notify", 4)
	})

	t.Run("Requires Reason", func(t *testing.T) {
		mockStore := new(storageMocks.Storage)
		cascader := NewCascader(mockStore, nil)
		mockStore.On("RecordAudit", mock.Anything, mock.Anything).Return(nil)

		_, err := cascader.SuspendRealtorBookings(context.Background(), "realtor-1", "", "admin-1")

		assert.ErrorIs(t, err, storage.ErrValidation)
		mockStore.AssertNotCalled(t, "ListActiveBookingsByRealtor", mock.Anything, mock.Anything)
	})

	t.Run("Requires Realtor ID", func(t *testing.T) {
		cascader := NewCascader(new(storageMocks.Storage), nil)

		_, err := cascader.SuspendRealtorBookings(context.Background(), "", "fraud", "admin-1")

		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("No Active Bookings", func(t *testing.T) {
		mockStore := new(storageMocks.Storage)
		cascader := NewCascader(mockStore, nil)

		mockStore.On("ListActiveBookingsByRealtor", mock.Anything, "realtor-1").Return([]models.Booking{}, nil).Once()
		mockStore.On("RecordAudit", mock.Anything, mock.Anything).Return(nil)

		result, err := cascader.SuspendRealtorBookings(context.Background(), "realtor-1", "fraud", "admin-1")

		require.NoError(t, err)
		assert.Equal(t, 0, result.Succeeded)
		assert.Empty(t, result.BookingIds)
	})
}
