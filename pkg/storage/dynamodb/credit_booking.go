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
	"github.com/google/uuid"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/storage"
)

// withdrawalsGSI1PK partitions all withdrawal rows under one GSI key so
// they can be listed ordered by request time.
const withdrawalsGSI1PK = "WITHDRAWALS"

// CreditFromBooking atomically credits the realtor's pending balance with
// their booking earnings, records the booking credit, and creates the
// matching withdrawal request. The conditional put of the credit record
// makes the whole operation idempotent per booking: a duplicate completion
// event cancels the transaction and the original credit is returned.
func (s *Store) CreditFromBooking(ctx context.Context, credit *models.BookingCredit) (*models.BookingCredit, error) {
	ledger, err := s.getOrCreateLedger(ctx, credit.RealtorId)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for credit: %w", err)
	}

	now := time.Now()
	credit.WithdrawalId = uuid.New().String()
	credit.CreditedAt = now

	withdrawal := &models.WithdrawalRequest{
		Id:          credit.WithdrawalId,
		RealtorId:   credit.RealtorId,
		Amount:      credit.RealtorEarnings,
		Status:      models.PENDING,
		RequestedAt: now,
		UpdatedAt:   now,
		GSI1PK:      withdrawalsGSI1PK,
	}

	creditAV, err := attributevalue.MarshalMap(credit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking credit: %w", err)
	}
	withdrawalAV, err := attributevalue.MarshalMap(withdrawal)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal request: %w", err)
	}
	amountAV, err := attributevalue.Marshal(credit.RealtorEarnings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal earnings amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credit timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: record the booking credit. This is the
				// idempotency guard; it fails for a booking already settled.
				Put: &types.Put{
					TableName:           aws.String(s.CreditsTableName),
					Item:                creditAV,
					ConditionExpression: aws.String("attribute_not_exists(booking_id)"),
				},
			},
			{
				// Operation 2: credit the realtor's pending balance.
				Update: &types.Update{
					TableName: aws.String(s.LedgersTableName),
					Key: map[string]types.AttributeValue{
						"realtor_id": &types.AttributeValueMemberS{Value: credit.RealtorId},
					},
					UpdateExpression:    aws.String("SET pending_balance = pending_balance + :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
			{
				// Operation 3: create the withdrawal request for the earnings.
				Put: &types.Put{
					TableName:           aws.String(s.WithdrawalsTableName),
					Item:                withdrawalAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 &&
			tce.CancellationReasons[0].Code != nil && *tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
			// Duplicate delivery: the booking already credited escrow.
			return s.GetBookingCredit(ctx, credit.BookingId)
		}
		return nil, fmt.Errorf("failed to execute booking credit transaction: %w", err)
	}

	return credit, nil
}

// GetBookingCredit retrieves the credit record for a booking.
func (s *Store) GetBookingCredit(ctx context.Context, bookingID string) (*models.BookingCredit, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.CreditsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get booking credit from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("credit for booking %s: %w", bookingID, storage.ErrNotFound)
	}

	var credit models.BookingCredit
	if err := attributevalue.UnmarshalMap(result.Item, &credit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking credit: %w", err)
	}

	return &credit, nil
}
