package disburser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPDisburser implements the Disburser interface against the provider's
// JSON API. Every call is bounded by Timeout; a deadline expiry is reported
// as a ProviderError, never as success.
type HTTPDisburser struct {
	Client  *http.Client
	URL     string
	Timeout time.Duration
}

// NewHTTPDisburser creates a new HTTPDisburser.
func NewHTTPDisburser(url string, timeout time.Duration) *HTTPDisburser {
	return &HTTPDisburser{
		Client:  &http.Client{},
		URL:     url,
		Timeout: timeout,
	}
}

// Make sure we conform to the interface
var _ Disburser = (*HTTPDisburser)(nil)

type providerResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

// Disburse posts the request to the provider and interprets the outcome.
func (d *HTTPDisburser) Disburse(ctx context.Context, req *Request) (*Receipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal disbursement request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build disbursement request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(httpReq)
	if err != nil {
		// Timeouts and transport failures are ambiguous; assume not paid.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &ProviderError{Reason: "disbursement timed out"}
		}
		return nil, &ProviderError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{Reason: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, &ProviderError{Reason: fmt.Sprintf("undecodable provider response: %v", err)}
	}

	if !pr.Success {
		return nil, &ProviderError{Reason: pr.Reason}
	}

	return &Receipt{Reference: pr.Reference}, nil
}
