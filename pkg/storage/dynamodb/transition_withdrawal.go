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

// CompleteWithdrawal finalizes a claimed withdrawal after a successful
// disbursement, recording the provider's payout reference.
func (s *Store) CompleteWithdrawal(ctx context.Context, withdrawalID, payoutReference string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal completion timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.WithdrawalsTableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: withdrawalID}},
		UpdateExpression:    aws.String("SET #status = :completed, payout_reference = :ref, completed_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
			":processing": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
			":ref":        &types.AttributeValueMemberS{Value: payoutReference},
			":now":        nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("withdrawal %s is not claimed: %w", withdrawalID, storage.ErrConflict)
		}
		return fmt.Errorf("failed to complete withdrawal: %w", err)
	}

	return nil
}

// FailWithdrawal records a failed disbursement attempt on a claimed
// withdrawal and releases the claim back to FAILED. The retry counter is
// incremented here and only here.
func (s *Store) FailWithdrawal(ctx context.Context, withdrawalID, reason string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal failure timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.WithdrawalsTableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: withdrawalID}},
		UpdateExpression:    aws.String("SET #status = :failed, failure_reason = :reason, retry_count = retry_count + :inc, updated_at = :now"),
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":     &types.AttributeValueMemberS{Value: string(models.FAILED)},
			":processing": &types.AttributeValueMemberS{Value: string(models.PROCESSING)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":inc":        &types.AttributeValueMemberN{Value: "1"},
			":now":        nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("withdrawal %s is not claimed: %w", withdrawalID, storage.ErrConflict)
		}
		return fmt.Errorf("failed to record withdrawal failure: %w", err)
	}

	return nil
}

// CancelWithdrawal transitions a PENDING or FAILED withdrawal to CANCELLED
// and releases the held amount to the realtor's available balance. A request
// that is claimed (PROCESSING) or already terminal is not cancellable.
//
// Cancelling from PENDING also debits the pending balance, since the funds
// were never reserved by a claim; cancelling from FAILED only credits the
// available balance. Either way the realtor's available balance increases by
// exactly the withdrawal amount.
func (s *Store) CancelWithdrawal(ctx context.Context, withdrawalID, reason string) error {
	w, err := s.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		return fmt.Errorf("failed to get withdrawal for cancellation: %w", err)
	}

	if w.Status != models.PENDING && w.Status != models.FAILED {
		return fmt.Errorf("withdrawal %s is %s: %w", withdrawalID, w.Status, storage.ErrConflict)
	}

	ledger, err := s.GetLedger(ctx, w.RealtorId)
	if err != nil {
		return fmt.Errorf("failed to get ledger for cancellation: %w", err)
	}

	now := time.Now()
	amountAV, err := attributevalue.Marshal(w.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal amount for cancellation: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for cancellation: %w", err)
	}

	ledgerUpdate := &types.Update{
		TableName: aws.String(s.LedgersTableName),
		Key: map[string]types.AttributeValue{
			"realtor_id": &types.AttributeValueMemberS{Value: w.RealtorId},
		},
		UpdateExpression:    aws.String("SET available_balance = available_balance + :amount, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  amountAV,
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.Version)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
			":now":     nowAV,
		},
	}
	if w.Status == models.PENDING {
		// Funds were never reserved; move them out of pending in the same write.
		if ledger.PendingBalance < w.Amount {
			return fmt.Errorf("pending balance %d below withdrawal amount %d: %w",
				ledger.PendingBalance, w.Amount, storage.ErrInsufficientFunds)
		}
		ledgerUpdate.UpdateExpression = aws.String("SET pending_balance = pending_balance - :amount, available_balance = available_balance + :amount, version = version + :inc, updated_at = :now")
		ledgerUpdate.ConditionExpression = aws.String("pending_balance >= :amount AND version = :version")
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(s.WithdrawalsTableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: w.Id}},
					UpdateExpression:    aws.String("SET #status = :cancelled, cancel_reason = :reason, updated_at = :now"),
					ConditionExpression: aws.String("#status = :observed"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cancelled": &types.AttributeValueMemberS{Value: string(models.CANCELLED)},
						":observed":  &types.AttributeValueMemberS{Value: string(w.Status)},
						":reason":    &types.AttributeValueMemberS{Value: reason},
						":now":       nowAV,
					},
				},
			},
			{Update: ledgerUpdate},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return fmt.Errorf("cancellation of withdrawal %s lost a race: %w", w.Id, storage.ErrConflict)
		}
		return fmt.Errorf("failed to execute cancellation transaction: %w", err)
	}

	return nil
}
