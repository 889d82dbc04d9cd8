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

// ClaimWithdrawal acquires the exclusive processing claim on a withdrawal
// by moving its status to PROCESSING. The status condition is the claim:
// of two concurrent callers, exactly one conditional write succeeds and the
// other receives ErrConflict.
//
// A claim from PENDING reserves the funds by debiting the realtor's pending
// balance in the same transact write. A claim from FAILED moves no money
// (it was reserved on the first claim) and requires retry_count < maxRetries.
func (s *Store) ClaimWithdrawal(ctx context.Context, w *models.WithdrawalRequest, expectedStatus models.WithdrawalStatus, maxRetries int32) error {
	switch expectedStatus {
	case models.PENDING:
		return s.claimPending(ctx, w)
	case models.FAILED:
		return s.claimFailed(ctx, w, maxRetries)
	default:
		return fmt.Errorf("cannot claim withdrawal from status %s: %w", expectedStatus, storage.ErrConflict)
	}
}

func (s *Store) claimPending(ctx context.Context, w *models.WithdrawalRequest) error {
	ledger, err := s.GetLedger(ctx, w.RealtorId)
	if err != nil {
		return fmt.Errorf("failed to get ledger for claim: %w", err)
	}
	if ledger.PendingBalance < w.Amount {
		return fmt.Errorf("pending balance %d below withdrawal amount %d: %w",
			ledger.PendingBalance, w.Amount, storage.ErrInsufficientFunds)
	}

	now := time.Now()
	amountAV, err := attributevalue.Marshal(w.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal amount for claim: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for claim: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: take the claim.
				Update: &types.Update{
					TableName:           aws.String(s.WithdrawalsTableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: w.Id}},
					UpdateExpression:    aws.String("SET #status = :processing, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":processing": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
						":pending":    &types.AttributeValueMemberS{Value: string(models.PENDING)},
						":now":        nowAV,
					},
				},
			},
			{
				// Operation 2: reserve the funds out of the pending balance.
				Update: &types.Update{
					TableName: aws.String(s.LedgersTableName),
					Key: map[string]types.AttributeValue{
						"realtor_id": &types.AttributeValueMemberS{Value: w.RealtorId},
					},
					UpdateExpression:    aws.String("SET pending_balance = pending_balance - :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("pending_balance >= :amount AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return fmt.Errorf("claim on withdrawal %s lost: %w", w.Id, storage.ErrConflict)
		}
		return fmt.Errorf("failed to execute claim transaction: %w", err)
	}

	return nil
}

func (s *Store) claimFailed(ctx context.Context, w *models.WithdrawalRequest, maxRetries int32) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for claim: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.WithdrawalsTableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: w.Id}},
		UpdateExpression:    aws.String("SET #status = :processing, updated_at = :now"),
		ConditionExpression: aws.String("#status = :failed AND retry_count < :max"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
			":failed":     &types.AttributeValueMemberS{Value: string(models.FAILED)},
			":max":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", maxRetries)},
			":now":        nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("retry claim on withdrawal %s lost: %w", w.Id, storage.ErrConflict)
		}
		return fmt.Errorf("failed to claim failed withdrawal: %w", err)
	}

	return nil
}
