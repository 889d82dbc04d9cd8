package suspension

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/notifier"
	"github.com/chris/rental-settlement/pkg/storage"
)

// Result summarizes a suspension cascade. Flagging is best-effort per
// booking, so partial outcomes are reported rather than rolled back.
type Result struct {
	RealtorId  string   `json:"realtor_id"`
	Succeeded  int      `json:"succeeded"`
	Failed     int      `json:"failed"`
	BookingIds []string `json:"booking_ids"`
}

// Cascader flags a suspended realtor's active bookings and notifies the
// affected guests.
type Cascader struct {
	Store    storage.Storage
	Notifier notifier.Notifier
}

// NewCascader creates a new Cascader.
func NewCascader(store storage.Storage, n notifier.Notifier) *Cascader {
	return &Cascader{Store: store, Notifier: n}
}

// SuspendRealtorBookings flags every ACTIVE booking held by the realtor.
// The reason is mandatory. A booking that fails to flag is counted and
// skipped; the rest of the batch proceeds.
func (c *Cascader) SuspendRealtorBookings(ctx context.Context, realtorID, reason, actor string) (*Result, error) {
	if realtorID == "" {
		return nil, fmt.Errorf("realtor ID is required: %w", storage.ErrValidation)
	}
	if reason == "" {
		err := fmt.Errorf("suspension reason is required: %w", storage.ErrValidation)
		c.audit(ctx, actor, realtorID, "rejected", err.Error())
		return nil, err
	}

	active, err := c.Store.ListActiveBookingsByRealtor(ctx, realtorID)
	if err != nil {
		c.audit(ctx, actor, realtorID, "error", err.Error())
		return nil, fmt.Errorf("failed to list active bookings for realtor %s: %w", realtorID, err)
	}

	result := &Result{RealtorId: realtorID, BookingIds: []string{}}
	for _, booking := range active {
		if err := c.Store.FlagBookingSuspended(ctx, booking.Id, reason); err != nil {
			result.Failed++
			slog.Log(ctx, slog.LevelError, "failed to flag booking suspended",
				"booking_id", booking.Id, "realtor_id", realtorID, "error", err)
			continue
		}
		result.Succeeded++
		result.BookingIds = append(result.BookingIds, booking.Id)
		c.notifyGuest(ctx, &booking)
	}

	c.audit(ctx, actor, realtorID, "suspended",
		fmt.Sprintf("reason=%s succeeded=%d failed=%d", reason, result.Succeeded, result.Failed))

	slog.Log(ctx, slog.LevelInfo, "suspension cascade finished",
		"realtor_id", realtorID, "succeeded", result.Succeeded, "failed", result.Failed)

	return result, nil
}

func (c *Cascader) notifyGuest(ctx context.Context, booking *models.Booking) {
	if c.Notifier == nil {
		return
	}
	notice := &notifier.Notice{
		Type:        notifier.BookingSuspendedNotice,
		RecipientId: booking.GuestId,
		BookingId:   booking.Id,
	}
	if err := c.Notifier.Notify(ctx, notice); err != nil {
		slog.Log(ctx, slog.LevelWarn, "failed to send suspension notice",
			"booking_id", booking.Id, "guest_id", booking.GuestId, "error", err)
	}
}

func (c *Cascader) audit(ctx context.Context, actor, realtorID, outcome, detail string) {
	entry := &models.AuditEntry{
		Actor:   actor,
		Action:  "realtor.suspend",
		Target:  realtorID,
		Outcome: outcome,
		Detail:  detail,
	}
	if err := c.Store.RecordAudit(ctx, entry); err != nil {
		slog.Log(ctx, slog.LevelError, "failed to record audit entry",
			"action", "realtor.suspend", "target", realtorID, "error", err)
	}
}
