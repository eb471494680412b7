package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitMiddleware_Disabled_PassThrough(t *testing.T) {
	mw := RateLimitMiddleware(0)
	handler := mw(okHandler())

	for i := 0; i < 100; i++ {
		req := httptest.NewRequest("POST", "/search", http.NoBody)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}

func TestRateLimitMiddleware_BurstExceeded_429(t *testing.T) {
	// 10 rpm gives a burst of one token.
	mw := RateLimitMiddleware(10)
	handler := mw(okHandler())

	req := httptest.NewRequest("POST", "/search", http.NoBody)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want %d", rr.Code, http.StatusOK)
	}

	req = httptest.NewRequest("POST", "/search", http.NoBody)
	req.RemoteAddr = "10.0.0.1:1235"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimitMiddleware_KeysAreIndependent(t *testing.T) {
	mw := RateLimitMiddleware(10)
	handler := mw(okHandler())

	first := httptest.NewRequest("POST", "/search", http.NoBody)
	first.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first client: got %d", rr.Code)
	}

	second := httptest.NewRequest("POST", "/search", http.NoBody)
	second.RemoteAddr = "10.0.0.2:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	if rr.Code != http.StatusOK {
		t.Errorf("distinct client must have its own bucket, got %d", rr.Code)
	}
}

func TestRateLimitMiddleware_ExemptPaths(t *testing.T) {
	mw := RateLimitMiddleware(10)
	handler := mw(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/health", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("health request %d: got %d", i, rr.Code)
		}
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/search", http.NoBody)
	req.RemoteAddr = "10.0.0.1:4321"
	if got := clientKey(req); got != "10.0.0.1" {
		t.Errorf("ip key: got %q", got)
	}

	req.Header.Set("Authorization", "Bearer abc")
	if got := clientKey(req); got != "Bearer abc" {
		t.Errorf("auth key: got %q", got)
	}
}
