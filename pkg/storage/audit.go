package storage

import (
	"context"

	"github.com/chris/rental-settlement/pkg/models"
)

// AuditStore defines the interface for the audit log sink. Every
// admin-triggered mutation is recorded, including failed attempts.
type AuditStore interface {
	// RecordAudit appends an audit entry.
	RecordAudit(ctx context.Context, entry *models.AuditEntry) error
}
