package payouts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chris/rental-settlement/pkg/disburser"
	"github.com/chris/rental-settlement/pkg/models"
	"github.com/chris/rental-settlement/pkg/notifier"
	"github.com/chris/rental-settlement/pkg/storage"
)

const (
	// DefaultMaxRetries bounds automatic retries of a failed withdrawal.
	DefaultMaxRetries int32 = 3

	// DefaultDisburseTimeout bounds a single disbursement call. A timeout is
	// a retryable failure, never a success.
	DefaultDisburseTimeout = 30 * time.Second

	// defaultSweepConcurrency bounds parallel attempts in a retry sweep.
	defaultSweepConcurrency = 4
)

// BatchResult summarizes a batch operation with per-item isolation.
type BatchResult struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Orchestrator drives withdrawal requests through their lifecycle against
// the external disbursement channel.
type Orchestrator struct {
	Store            storage.Storage
	Disburser        disburser.Disburser
	Notifier         notifier.Notifier
	MaxRetries       int32
	DisburseTimeout  time.Duration
	SweepConcurrency int
}

// NewOrchestrator creates an Orchestrator with default retry and timeout
// policies.
func NewOrchestrator(store storage.Storage, d disburser.Disburser, n notifier.Notifier) *Orchestrator {
	return &Orchestrator{
		Store:            store,
		Disburser:        d,
		Notifier:         n,
		MaxRetries:       DefaultMaxRetries,
		DisburseTimeout:  DefaultDisburseTimeout,
		SweepConcurrency: defaultSweepConcurrency,
	}
}

// ProcessWithdrawal claims the withdrawal, calls the disbursement channel,
// and applies the resulting transition. Exactly one concurrent caller can
// hold the claim; the rest receive ErrConflict and no second disbursement
// is dispatched.
func (o *Orchestrator) ProcessWithdrawal(ctx context.Context, withdrawalID, payoutReference, actor string) (*models.WithdrawalRequest, error) {
	w, err := o.Store.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		o.audit(ctx, actor, "payout.process", withdrawalID, "rejected", err.Error())
		return nil, err
	}

	if err := o.checkClaimable(w); err != nil {
		o.audit(ctx, actor, "payout.process", withdrawalID, "rejected", err.Error())
		return nil, err
	}

	if err := o.Store.ClaimWithdrawal(ctx, w, w.Status, o.MaxRetries); err != nil {
		o.audit(ctx, actor, "payout.process", withdrawalID, "rejected", err.Error())
		return nil, err
	}

	// The claim is held; from here every outcome is recorded on the request.
	disburseCtx, cancel := context.WithTimeout(ctx, o.DisburseTimeout)
	defer cancel()

	receipt, err := o.Disburser.Disburse(disburseCtx, &disburser.Request{
		WithdrawalId: w.Id,
		RealtorId:    w.RealtorId,
		Amount:       w.Amount,
		Reference:    payoutReference,
	})
	if err != nil {
		reason := err.Error()
		var pe *disburser.ProviderError
		if errors.As(err, &pe) {
			reason = pe.Reason
		}
		if failErr := o.Store.FailWithdrawal(ctx, w.Id, reason); failErr != nil {
			// The claim could not be released; the reconciliation sweep will
			// pick the request up once it goes stale.
			slog.Log(ctx, slog.LevelError, "failed to record disbursement failure",
				"withdrawal_id", w.Id, "error", failErr)
			o.audit(ctx, actor, "payout.process", w.Id, "error", failErr.Error())
			return nil, fmt.Errorf("failed to record disbursement failure: %w", failErr)
		}
		o.audit(ctx, actor, "payout.process", w.Id, "failed", reason)
		return o.Store.GetWithdrawal(ctx, w.Id)
	}

	if err := o.Store.CompleteWithdrawal(ctx, w.Id, receipt.Reference); err != nil {
		slog.Log(ctx, slog.LevelError, "disbursed but failed to complete withdrawal",
			"withdrawal_id", w.Id, "payout_reference", receipt.Reference, "error", err)
		o.audit(ctx, actor, "payout.process", w.Id, "error", err.Error())
		return nil, fmt.Errorf("disbursed but failed to complete withdrawal %s: %w", w.Id, err)
	}

	o.audit(ctx, actor, "payout.process", w.Id, "completed", receipt.Reference)
	o.notifyPayout(ctx, w)

	return o.Store.GetWithdrawal(ctx, w.Id)
}

// checkClaimable rejects requests that cannot enter processing, mapping
// exhausted retries to their own error so callers can flag manual review.
func (o *Orchestrator) checkClaimable(w *models.WithdrawalRequest) error {
	switch w.Status {
	case models.PENDING:
		return nil
	case models.FAILED:
		if w.RetryCount >= o.MaxRetries {
			return fmt.Errorf("withdrawal %s at retry %d: %w", w.Id, w.RetryCount, storage.ErrRetriesExhausted)
		}
		return nil
	default:
		return fmt.Errorf("withdrawal %s is %s: %w", w.Id, w.Status, storage.ErrConflict)
	}
}

// RetryFailedWithdrawals attempts every FAILED request still under the retry
// limit. Attempts run with bounded concurrency and are isolated: one
// request's failure never aborts the rest.
func (o *Orchestrator) RetryFailedWithdrawals(ctx context.Context, actor string) (*BatchResult, error) {
	retryable, err := o.Store.ListRetryableWithdrawals(ctx, o.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list retryable withdrawals: %w", err)
	}

	var (
		mu     sync.Mutex
		result = &BatchResult{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.SweepConcurrency)

	for _, w := range retryable {
		w := w
		g.Go(func() error {
			got, err := o.ProcessWithdrawal(gctx, w.Id, "", actor)

			mu.Lock()
			defer mu.Unlock()
			result.Processed++
			switch {
			case err != nil:
				result.Failed++
				slog.Log(gctx, slog.LevelWarn, "retry attempt failed",
					"withdrawal_id", w.Id, "error", err)
			case got.Status != models.COMPLETED:
				// A cleanly recorded FAILED transition is still a failed
				// attempt from the sweep's point of view.
				result.Failed++
				slog.Log(gctx, slog.LevelWarn, "retry attempt ended in failure",
					"withdrawal_id", w.Id, "status", got.Status)
			default:
				result.Successful++
			}
			// Individual outcomes are recorded above; never fail the group.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("retry sweep interrupted: %w", err)
	}

	o.audit(ctx, actor, "payout.retry_all", "withdrawals",
		fmt.Sprintf("successful=%d", result.Successful),
		fmt.Sprintf("processed=%d failed=%d", result.Processed, result.Failed))

	return result, nil
}

// CancelWithdrawal cancels a PENDING or FAILED request and releases the held
// funds to the realtor's available balance. The reason is mandatory.
func (o *Orchestrator) CancelWithdrawal(ctx context.Context, withdrawalID, reason, actor string) error {
	if reason == "" {
		err := fmt.Errorf("cancellation reason is required: %w", storage.ErrValidation)
		o.audit(ctx, actor, "payout.cancel", withdrawalID, "rejected", err.Error())
		return err
	}

	if err := o.Store.CancelWithdrawal(ctx, withdrawalID, reason); err != nil {
		o.audit(ctx, actor, "payout.cancel", withdrawalID, "rejected", err.Error())
		return err
	}

	o.audit(ctx, actor, "payout.cancel", withdrawalID, "cancelled", reason)
	return nil
}

// ReconcileStuckWithdrawals releases claims orphaned by a crash between the
// claim and its completion. The disbursement outcome is unknown, so the
// conservative reading applies: assume not paid and make the request
// retryable again.
func (o *Orchestrator) ReconcileStuckWithdrawals(ctx context.Context, maxAge time.Duration) (*BatchResult, error) {
	stuck, err := o.Store.GetStuckWithdrawals(ctx, maxAge)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck withdrawals: %w", err)
	}

	result := &BatchResult{}
	for _, w := range stuck {
		result.Processed++
		if err := o.Store.FailWithdrawal(ctx, w.Id, "claim expired without outcome"); err != nil {
			result.Failed++
			slog.Log(ctx, slog.LevelError, "failed to reconcile stuck withdrawal",
				"withdrawal_id", w.Id, "error", err)
			continue
		}
		result.Successful++
		slog.Log(ctx, slog.LevelWarn, "reconciled stuck withdrawal",
			"withdrawal_id", w.Id, "claimed_at", w.UpdatedAt)
	}

	return result, nil
}

// audit records the attempt regardless of outcome; a sink failure is logged
// and never masks the operation's own result.
func (o *Orchestrator) audit(ctx context.Context, actor, action, target, outcome, detail string) {
	entry := &models.AuditEntry{
		Actor:   actor,
		Action:  action,
		Target:  target,
		Outcome: outcome,
		Detail:  detail,
	}
	if err := o.Store.RecordAudit(ctx, entry); err != nil {
		slog.Log(ctx, slog.LevelError, "failed to record audit entry",
			"action", action, "target", target, "error", err)
	}
}

// notifyPayout tells the realtor their payout completed. Fire-and-forget.
func (o *Orchestrator) notifyPayout(ctx context.Context, w *models.WithdrawalRequest) {
	if o.Notifier == nil {
		return
	}
	notice := &notifier.Notice{
		Type:         notifier.PayoutCompletedNotice,
		RecipientId:  w.RealtorId,
		WithdrawalId: w.Id,
	}
	if err := o.Notifier.Notify(ctx, notice); err != nil {
		slog.Log(ctx, slog.LevelWarn, "failed to send payout notice",
			"withdrawal_id", w.Id, "error", err)
	}
}
