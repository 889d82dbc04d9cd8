package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage/dynamodb/mocks"
)

func testStore(client DynamoDBAPI) *Store {
	return New(client, "ledgers", "withdrawals", "credits", "bookings", "audit")
}

func TestCreditFromBooking(t *testing.T) {
	ledger := &models.RealtorLedger{RealtorId: "realtor-1", PendingBalance: 0, Version: 1}
	credit := func() *models.BookingCredit {
		return &models.BookingCredit{
			BookingId:          "booking-1",
			RealtorId:          "realtor-1",
			TotalAmount:        100_000,
			PlatformCommission: 7_000,
			RealtorEarnings:    93_000,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		created, err := store.CreditFromBooking(context.Background(), credit())

		assert.NoError(t, err)
		assert.NotEmpty(t, created.WithdrawalId)
		assert.False(t, created.CreditedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Delivery Is A No-Op", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()

		// The conditional put of the credit record fails: already settled.
		tce := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, tce).Once()

		existing := credit()
		existing.WithdrawalId = "withdrawal-original"
		existingAV, _ := attributevalue.MarshalMap(existing)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: existingAV}, nil).Once()

		got, err := store.CreditFromBooking(context.Background(), credit())

		assert.NoError(t, err)
		assert.Equal(t, "withdrawal-original", got.WithdrawalId)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates Ledger On First Settlement", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		_, err := store.CreditFromBooking(context.Background(), credit())

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed")).Once()

		_, err := store.CreditFromBooking(context.Background(), credit())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute booking credit transaction")
		mockClient.AssertExpectations(t)
	})
}
