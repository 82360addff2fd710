package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestClient_GetOrder(t *testing.T) {
	testCases := []struct {
		Name          string
		Handler       http.HandlerFunc
		Expected      *OrderResponse
		ExpectedError error
		RetryAfter    time.Duration
	}{
		{
			Name: "Success. Paid order #1",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/orders/BC-1001" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"order":"BC-1001","status":"PAID","total":249.99}`))
			},
			Expected: &OrderResponse{Order: "BC-1001", Status: "PAID", Total: 249.99},
		},
		{
			Name: "Error. Order not found #2",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			Name: "Error. Too many requests #3",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "120")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			RetryAfter: 120 * time.Second,
		},
		{
			Name: "Error. Service failure #4",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			ExpectedError: ErrServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := httptest.NewServer(tc.Handler)
			defer server.Close()

			c := NewClient(server.URL+"/", server.Client())
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			resp, err := c.GetOrder(ctx, "BC-1001")

			if tc.RetryAfter > 0 {
				var rateErr *RateLimitError
				if !errors.As(err, &rateErr) {
					t.Fatalf("Expected RateLimitError, got: '%v'", err)
				}
				if rateErr.RetryAfter != tc.RetryAfter {
					t.Errorf("Expected retry after %v, got %v", tc.RetryAfter, rateErr.RetryAfter)
				}
				return
			}
			if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.Expected, resp); diff != "" {
				t.Errorf("order mismatch:\n %s", diff)
			}
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		Name     string
		Value    string
		Expected time.Duration
	}{
		{Name: "Empty #1", Value: "", Expected: time.Minute},
		{Name: "Seconds #2", Value: "30", Expected: 30 * time.Second},
		{Name: "Garbage #3", Value: "soon", Expected: time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			headers := http.Header{}
			if tc.Value != "" {
				headers.Set("Retry-After", tc.Value)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected %v, got %v", tc.Expected, got)
			}
		})
	}
}

func TestRateLimiter_BlockFor(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	if rl.Blocked() {
		t.Fatalf("Expected limiter not blocked")
	}
	rl.BlockFor(20 * time.Millisecond)
	if !rl.Blocked() {
		t.Fatalf("Expected limiter blocked")
	}

	deadline := time.Now().Add(time.Second)
	for rl.Blocked() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if rl.Blocked() {
		t.Fatalf("Expected block to be released")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rl.Wait(ctx); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
}
