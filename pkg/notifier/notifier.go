package notifier

import (
	"context"
	"time"
)

// NoticeType identifies the kind of notification being dispatched.
type NoticeType string

const (
	BookingSuspendedNotice NoticeType = "BOOKING_SUSPENDED"
	PayoutCompletedNotice  NoticeType = "PAYOUT_COMPLETED"
)

// Notice is a fire-and-forget message for the downstream notification
// service. Delivery is best-effort; the engine never blocks on it.
type Notice struct {
	Id           string     `json:"id"`
	Type         NoticeType `json:"type"`
	RecipientId  string     `json:"recipient_id"`
	BookingId    string     `json:"booking_id,omitempty"`
	WithdrawalId string     `json:"withdrawal_id,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	SentAt       time.Time  `json:"sent_at"`
}

// Notifier defines the interface for dispatching notifications.
type Notifier interface {
	// Notify enqueues a notice for asynchronous delivery.
	Notify(ctx context.Context, notice *Notice) error
}
