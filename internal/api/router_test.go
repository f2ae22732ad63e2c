package api_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"netanyaRelay/internal/api"
	"netanyaRelay/internal/config"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/service"
	mock_service "netanyaRelay/internal/service/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestServer(t *testing.T, cfg config.Config, submitter service.IncidentSubmitter, health service.HealthReporter) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return api.NewServer(ctx, &cfg, newTestLogger(), service.NewService(submitter, health)).Handler()
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	health := mock_service.NewMockHealthReporter(ctrl)
	health.EXPECT().Downstream(gomock.Any()).
		Return(domain.DownstreamHealth{Status: domain.HealthSimulated, Mode: "simulated"}, nil).Times(1)

	h := newTestServer(t, config.Default(), mock_service.NewMockIncidentSubmitter(ctrl), health)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health: %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health/downstream", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"simulated"`) {
		t.Fatalf("downstream health: %d %s", rr.Code, rr.Body.String())
	}
}

func TestRouter_SubmitRateLimited(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1

	submitter := mock_service.NewMockIncidentSubmitter(ctrl)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(domain.SubmissionResult{Success: true, CorrelationID: "c1"}, nil).Times(1)

	h := newTestServer(t, cfg, submitter, mock_service.NewMockHealthReporter(ctrl))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/submit", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.10:4000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("codes %v", codes)
	}
}

func TestRouter_SubmitBodyCap(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	cfg.Attachment.MaxBytes = 1024

	submitter := mock_service.NewMockIncidentSubmitter(ctrl)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
	h := newTestServer(t, cfg, submitter, mock_service.NewMockHealthReporter(ctrl))

	body := `{"custom_text":"` + strings.Repeat("a", int(api.MaxBodyBytes(1024))) + `"}`
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/incidents/submit", strings.NewReader(body)))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 got %d", rr.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestServer(t, config.Default(), mock_service.NewMockIncidentSubmitter(ctrl), mock_service.NewMockHealthReporter(ctrl))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/incidents/submit", nil)
	req.Header.Set("Origin", "https://www.netanya.muni.il")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://www.netanya.muni.il" {
		t.Fatalf("allow origin %q (status %d)", got, rr.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/incidents/submit", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}
