package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
)

// GetLedger retrieves a realtor's escrow ledger from DynamoDB.
func (s *Store) GetLedger(ctx context.Context, realtorID string) (*models.RealtorLedger, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"realtor_id": realtorID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal realtor ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.LedgersTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("ledger for realtor %s: %w", realtorID, storage.ErrNotFound)
	}

	var ledger models.RealtorLedger
	if err := attributevalue.UnmarshalMap(result.Item, &ledger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger: %w", err)
	}

	return &ledger, nil
}

// getOrCreateLedger returns the realtor's ledger, creating a zeroed one on
// first settlement. A concurrent creation loses the conditional put and
// falls back to reading the winner's row.
func (s *Store) getOrCreateLedger(ctx context.Context, realtorID string) (*models.RealtorLedger, error) {
	ledger, err := s.GetLedger(ctx, realtorID)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	fresh := &models.RealtorLedger{
		RealtorId: realtorID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item, err := attributevalue.MarshalMap(fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal new ledger: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.LedgersTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(realtor_id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return s.GetLedger(ctx, realtorID)
		}
		return nil, fmt.Errorf("failed to create ledger for realtor %s: %w", realtorID, err)
	}

	return fresh, nil
}
