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

const (
	bookingRealtorGSI = "realtor_id-index"
	bookingStatusGSI  = "status-completed_at-index"
)

// GetBooking retrieves a booking from DynamoDB by its ID.
func (s *Store) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.BookingsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get booking from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, storage.ErrNotFound)
	}

	var booking models.Booking
	if err := attributevalue.UnmarshalMap(result.Item, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &booking, nil
}

// ListActiveBookingsByRealtor returns a realtor's ACTIVE bookings.
func (s *Store) ListActiveBookingsByRealtor(ctx context.Context, realtorID string) ([]models.Booking, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.BookingsTableName),
		IndexName:              aws.String(bookingRealtorGSI),
		KeyConditionExpression: aws.String("realtor_id = :realtorID"),
		FilterExpression:       aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":realtorID": &types.AttributeValueMemberS{Value: realtorID},
			":active":    &types.AttributeValueMemberS{Value: string(models.BookingActive)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query active bookings for realtor %s: %w", realtorID, err)
	}

	var bookings []models.Booking
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}

	return bookings, nil
}

// FlagBookingSuspended marks a single active booking SUSPENDED. The status
// condition ensures a booking that completed or suspended in the meantime is
// not overwritten.
func (s *Store) FlagBookingSuspended(ctx context.Context, bookingID, reason string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal suspension timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.BookingsTableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: bookingID}},
		UpdateExpression:    aws.String("SET #status = :suspended, suspended_reason = :reason, updated_at = :now"),
		ConditionExpression: aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":suspended": &types.AttributeValueMemberS{Value: string(models.BookingSuspended)},
			":active":    &types.AttributeValueMemberS{Value: string(models.BookingActive)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":now":       nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("booking %s is not active: %w", bookingID, storage.ErrConflict)
		}
		return fmt.Errorf("failed to flag booking %s suspended: %w", bookingID, err)
	}

	return nil
}

// ListCompletedBookings returns COMPLETED bookings, optionally bounded by
// completion time and filtered by realtor.
func (s *Store) ListCompletedBookings(ctx context.Context, start, end *time.Time, realtorID string) ([]models.Booking, error) {
	keyCondition := "#status = :status"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(models.BookingCompleted)},
	}

	switch {
	case start != nil && end != nil:
		keyCondition += " AND completed_at BETWEEN :start AND :end"
		values[":start"] = &types.AttributeValueMemberS{Value: start.Format(time.RFC3339Nano)}
		values[":end"] = &types.AttributeValueMemberS{Value: end.Format(time.RFC3339Nano)}
	case start != nil:
		keyCondition += " AND completed_at >= :start"
		values[":start"] = &types.AttributeValueMemberS{Value: start.Format(time.RFC3339Nano)}
	case end != nil:
		keyCondition += " AND completed_at <= :end"
		values[":end"] = &types.AttributeValueMemberS{Value: end.Format(time.RFC3339Nano)}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.BookingsTableName),
		IndexName:                 aws.String(bookingStatusGSI),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if realtorID != "" {
		input.FilterExpression = aws.String("realtor_id = :realtorID")
		values[":realtorID"] = &types.AttributeValueMemberS{Value: realtorID}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed bookings: %w", err)
	}

	var bookings []models.Booking
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed bookings: %w", err)
	}

	return bookings, nil
}
