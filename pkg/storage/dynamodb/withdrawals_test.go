package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
	"github.com/chris/rental-settlement/pkg/storage/dynamodb/mocks"
)

func queryOutput(t *testing.T, ws []models.WithdrawalRequest) *dynamodb.QueryOutput {
	t.Helper()
	out := &dynamodb.QueryOutput{}
	for _, w := range ws {
		av, err := attributevalue.MarshalMap(w)
		require.NoError(t, err)
		out.Items = append(out.Items, av)
	}
	return out
}

func TestGetWithdrawal(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.GetWithdrawal(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListPendingWithdrawals(t *testing.T) {
	now := time.Now()
	pending := []models.WithdrawalRequest{
		{Id: "w-b", RealtorId: "r-1", Status: models.PENDING, RequestedAt: now.Add(-2 * time.Hour)},
		{Id: "w-d", RealtorId: "r-2", Status: models.PENDING, RequestedAt: now},
	}
	failed := []models.WithdrawalRequest{
		{Id: "w-a", RealtorId: "r-1", Status: models.FAILED, RequestedAt: now.Add(-3 * time.Hour)},
		{Id: "w-c", RealtorId: "r-1", Status: models.FAILED, RequestedAt: now.Add(-1 * time.Hour)},
	}

	t.Run("Merged Oldest First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, pending), nil).Once()
		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, failed), nil).Once()

		got, err := store.ListPendingWithdrawals(context.Background(), 1, 10, "")

		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "w-a", got[0].Id)
		assert.Equal(t, "w-b", got[1].Id)
		assert.Equal(t, "w-c", got[2].Id)
		assert.Equal(t, "w-d", got[3].Id)
	})

	t.Run("Realtor Filter And Paging", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, pending), nil).Once()
		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, failed), nil).Once()

		got, err := store.ListPendingWithdrawals(context.Background(), 2, 2, "r-1")

		require.NoError(t, err)
		// r-1 has w-a, w-b, w-c oldest-first; page 2 of size 2 is just w-c.
		require.Len(t, got, 1)
		assert.Equal(t, "w-c", got[0].Id)
	})

	t.Run("Page Past The End", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, pending), nil).Once()
		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, failed), nil).Once()

		got, err := store.ListPendingWithdrawals(context.Background(), 10, 20, "")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListWithdrawals(t *testing.T) {
	now := time.Now()
	all := []models.WithdrawalRequest{
		{Id: "w-1", RealtorId: "r-1", Status: models.COMPLETED, RequestedAt: now.Add(-2 * time.Hour)},
		{Id: "w-2", RealtorId: "r-2", Status: models.PENDING, RequestedAt: now.Add(-time.Hour)},
		{Id: "w-3", RealtorId: "r-1", Status: models.FAILED, RequestedAt: now},
	}

	t.Run("No Status Uses The Listing Index", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.IndexName != nil && *in.IndexName == "gsi1pk-requested_at-index"
		})).Return(queryOutput(t, all), nil).Once()

		got, err := store.ListWithdrawals(context.Background(), "", "")

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "w-1", got[0].Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Realtor Filter", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, all), nil).Once()

		got, err := store.ListWithdrawals(context.Background(), "", "r-1")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "w-1", got[0].Id)
		assert.Equal(t, "w-3", got[1].Id)
	})
}

func TestGetStuckWithdrawals(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	stuck := []models.WithdrawalRequest{
		{Id: "w-stuck", Status: models.PROCESSING, UpdatedAt: time.Now().Add(-time.Hour)},
	}
	mockClient.On("Query", mock.Anything, mock.Anything).Return(queryOutput(t, stuck), nil).Once()

	got, err := store.GetStuckWithdrawals(context.Background(), 15*time.Minute)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w-stuck", got[0].Id)
}
