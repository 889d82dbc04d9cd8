package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
	"github.com/chris/rental-settlement/pkg/storage/dynamodb/mocks"
)

func TestClaimWithdrawal(t *testing.T) {
	withdrawal := &models.WithdrawalRequest{
		Id:        "w-1",
		RealtorId: "realtor-1",
		Amount:    93_000,
		Status:    models.PENDING,
	}

	t.Run("Claim From Pending Reserves Funds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledger := &models.RealtorLedger{RealtorId: "realtor-1", PendingBalance: 93_000, Version: 3}
		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.PENDING, 3)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Claim Loses With Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledger := &models.RealtorLedger{RealtorId: "realtor-1", PendingBalance: 93_000, Version: 3}
		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{}).Once()

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.PENDING, 3)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Pending Balance", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		ledger := &models.RealtorLedger{RealtorId: "realtor-1", PendingBalance: 100, Version: 3}
		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil).Once()

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.PENDING, 3)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		// The transact write is never attempted.
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Retry Claim From Failed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.FAILED, 3)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Retry Claim Refused When Retries Exhausted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		// retry_count < :max condition fails server-side.
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.FAILED, 3)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Claim From Terminal Status Refused", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		err := store.ClaimWithdrawal(context.Background(), withdrawal, models.COMPLETED, 3)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}
