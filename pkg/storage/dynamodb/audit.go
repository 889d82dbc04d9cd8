package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/chris/rental-settlement/pkg/models"
)

const auditGSI1PK = "AUDIT_ENTRIES"

// RecordAudit appends an audit entry for an admin-triggered mutation.
func (s *Store) RecordAudit(ctx context.Context, entry *models.AuditEntry) error {
	if entry.Id == "" {
		entry.Id = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.GSI1PK = auditGSI1PK

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.AuditTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}

	return nil
}
