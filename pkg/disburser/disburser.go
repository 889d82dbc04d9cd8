package disburser

import (
	"context"
	"fmt"
)

// Request describes a single disbursement to a realtor's payout destination.
type Request struct {
	WithdrawalId string `json:"withdrawal_id"`
	RealtorId    string `json:"realtor_id"`
	Amount       int64  `json:"amount"`
	// Reference is an optional caller-supplied payout reference forwarded
	// to the provider for traceability.
	Reference string `json:"reference,omitempty"`
}

// Receipt is the provider's confirmation of a successful disbursement.
type Receipt struct {
	Reference string `json:"reference"`
}

// ProviderError is a failed or ambiguous disbursement attempt. It is always
// retryable: an ambiguous outcome (e.g. a timeout) is treated as not paid.
type ProviderError struct {
	Reason string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("disbursement provider: %s", e.Reason)
}

// Disburser defines the interface to the external disbursement channel.
type Disburser interface {
	// Disburse transfers the amount to the realtor's payout destination.
	// Failures are returned as *ProviderError; once dispatched, a call
	// cannot be cancelled.
	Disburse(ctx context.Context, req *Request) (*Receipt, error)
}
