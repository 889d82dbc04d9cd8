package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
)

const (
	withdrawalStatusGSI  = "status-requested_at-index"
	withdrawalListingGSI = "gsi1pk-requested_at-index"
)

// GetWithdrawal retrieves a withdrawal request from DynamoDB by its ID.
func (s *Store) GetWithdrawal(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": withdrawalID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.WithdrawalsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("withdrawal %s: %w", withdrawalID, storage.ErrNotFound)
	}

	var w models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(result.Item, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal: %w", err)
	}

	return &w, nil
}

// queryByStatus queries the status GSI, oldest requests first.
func (s *Store) queryByStatus(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals by status %s: %w", status, err)
	}

	var withdrawals []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawals: %w", err)
	}

	return withdrawals, nil
}

// ListPendingWithdrawals returns PENDING and FAILED requests oldest-first,
// optionally filtered by realtor, sliced by page and limit (page starts at 1).
func (s *Store) ListPendingWithdrawals(ctx context.Context, page, limit int, realtorID string) ([]models.WithdrawalRequest, error) {
	pending, err := s.queryByStatus(ctx, models.PENDING)
	if err != nil {
		return nil, err
	}
	failed, err := s.queryByStatus(ctx, models.FAILED)
	if err != nil {
		return nil, err
	}

	merged := make([]models.WithdrawalRequest, 0, len(pending)+len(failed))
	for _, w := range append(pending, failed...) {
		if realtorID != "" && w.RealtorId != realtorID {
			continue
		}
		merged = append(merged, w)
	}

	// Oldest first, so the earliest requests are reviewed first.
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].RequestedAt.Before(merged[j].RequestedAt)
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(merged) {
		return []models.WithdrawalRequest{}, nil
	}
	end := start + limit
	if end > len(merged) {
		end = len(merged)
	}

	return merged[start:end], nil
}

// ListRetryableWithdrawals returns FAILED requests still under the retry limit.
func (s *Store) ListRetryableWithdrawals(ctx context.Context, maxRetries int32) ([]models.WithdrawalRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("retry_count < :max"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.FAILED)},
			":max":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", maxRetries)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query retryable withdrawals: %w", err)
	}

	var withdrawals []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal retryable withdrawals: %w", err)
	}

	return withdrawals, nil
}

// ListWithdrawals returns withdrawal requests optionally filtered by status
// and realtor. Without a status filter it queries the listing GSI, which
// holds every row under one partition key ordered by request time.
func (s *Store) ListWithdrawals(ctx context.Context, status models.WithdrawalStatus, realtorID string) ([]models.WithdrawalRequest, error) {
	var withdrawals []models.WithdrawalRequest
	var err error

	if status != "" {
		withdrawals, err = s.queryByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
	} else {
		result, queryErr := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.WithdrawalsTableName),
			IndexName:              aws.String(withdrawalListingGSI),
			KeyConditionExpression: aws.String("gsi1pk = :gsi1pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":gsi1pk": &types.AttributeValueMemberS{Value: withdrawalsGSI1PK},
			},
			ScanIndexForward: aws.Bool(true),
		})
		if queryErr != nil {
			return nil, fmt.Errorf("failed to query withdrawal listing index: %w", queryErr)
		}
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal withdrawals: %w", err)
		}
	}

	if realtorID == "" {
		return withdrawals, nil
	}

	filtered := withdrawals[:0]
	for _, w := range withdrawals {
		if w.RealtorId == realtorID {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// GetStuckWithdrawals retrieves requests that have been in PROCESSING for
// longer than maxAge. These are claims orphaned by a crash between the
// claim and its completion.
func (s *Store) GetStuckWithdrawals(ctx context.Context, maxAge time.Duration) ([]models.WithdrawalRequest, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("updated_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck withdrawals: %w", err)
	}

	var withdrawals []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck withdrawals: %w", err)
	}

	return withdrawals, nil
}
