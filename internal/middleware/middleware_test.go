package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestLimit_PerIP(t *testing.T) {
	t.Parallel()

	l := newRateLimiter(1, 2, time.Minute)
	h := l.LimitMiddleware(newTestLogger())(okHandler)

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/submit", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, code)
		}
	}
	if code := do("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Fatalf("burst exhausted: got %d", code)
	}
	if code := do("10.0.0.2:5000"); code != http.StatusOK {
		t.Fatalf("other ip must not be limited: got %d", code)
	}
}

func TestLimit_SweepDropsIdleVisitors(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newRateLimiter(1, 1, time.Minute)
	l.now = func() time.Time { return now }

	l.getVisitor("10.0.0.1")
	now = now.Add(30 * time.Second)
	l.getVisitor("10.0.0.2")
	now = now.Add(45 * time.Second)
	l.sweep()

	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Fatal("idle visitor kept")
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Fatal("active visitor dropped")
	}
}

func TestMaxBody(t *testing.T) {
	t.Parallel()

	var readErr error
	h := MaxBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("declared length over cap: got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("0123456789")))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)
	var mbe *http.MaxBytesError
	if !errors.As(readErr, &mbe) {
		t.Fatalf("expected MaxBytesError, got %v", readErr)
	}
}
