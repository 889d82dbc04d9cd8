package disburser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDisburser(t *testing.T) {
	req := &Request{WithdrawalId: "w-1", RealtorId: "realtor-1", Amount: 93_000}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var got Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "w-1", got.WithdrawalId)
			json.NewEncoder(w).Encode(providerResponse{Success: true, Reference: "ref-42"})
		}))
		defer server.Close()

		d := NewHTTPDisburser(server.URL, time.Second)
		receipt, err := d.Disburse(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "ref-42", receipt.Reference)
	})

	t.Run("Provider Declines", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(providerResponse{Success: false, Reason: "account frozen"})
		}))
		defer server.Close()

		d := NewHTTPDisburser(server.URL, time.Second)
		_, err := d.Disburse(context.Background(), req)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "account frozen", pe.Reason)
	})

	t.Run("Non-2xx Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		d := NewHTTPDisburser(server.URL, time.Second)
		_, err := d.Disburse(context.Background(), req)

		var pe *ProviderError
		assert.ErrorAs(t, err, &pe)
	})

	t.Run("Timeout Is A Retryable Failure", func(t *testing.T) {
		block := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-block
		}))
		defer server.Close()
		defer close(block)

		d := NewHTTPDisburser(server.URL, 50*time.Millisecond)
		_, err := d.Disburse(context.Background(), req)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "disbursement timed out", pe.Reason)
	})
}
