package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	limited := RateLimit(3, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/generate-cosplay", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := do("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: got %d", i+1, code)
		}
	}
	if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", code)
	}

	// A different client has its own bucket.
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client blocked: %d", code)
	}
}

func TestRateLimitWindowResets(t *testing.T) {
	limited := RateLimit(1, 20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside window, got %d", code)
	}
	time.Sleep(30 * time.Millisecond)
	if code := do(); code != http.StatusOK {
		t.Fatalf("expected fresh bucket after window, got %d", code)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "garbage, 203.0.113.7")
	if got := clientIPForRateLimit(req); got != "203.0.113.7" {
		t.Fatalf("got %q", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := clientIPForRateLimit(req); got != "127.0.0.1" {
		t.Fatalf("got %q", got)
	}
}
