package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/rental-settlement/pkg/storage"
)

// DynamoDBAPI defines the subset of the DynamoDB client used by the store.
// It exists so the store can be tested against a mock client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client               DynamoDBAPI
	LedgersTableName     string
	WithdrawalsTableName string
	CreditsTableName     string
	BookingsTableName    string
	AuditTableName       string
}

// New creates a new Store.
func New(client DynamoDBAPI, ledgersTable, withdrawalsTable, creditsTable, bookingsTable, auditTable string) *Store {
	return &Store{
		Client:               client,
		LedgersTableName:     ledgersTable,
		WithdrawalsTableName: withdrawalsTable,
		CreditsTableName:     creditsTable,
		BookingsTableName:    bookingsTable,
		AuditTableName:       auditTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
