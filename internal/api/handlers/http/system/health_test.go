package system_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"netanyaRelay/internal/api/handlers/http/system"
	mock_system "netanyaRelay/internal/api/handlers/http/system/mocks"
	"netanyaRelay/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestDownstreamHealth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		health domain.DownstreamHealth
		err    error
		code   int
	}{
		{"healthy", domain.DownstreamHealth{Status: domain.HealthUp, Mode: "live", StatusCode: 200}, nil, http.StatusOK},
		{"simulated", domain.DownstreamHealth{Status: domain.HealthSimulated, Mode: "simulated"}, nil, http.StatusOK},
		{"unhealthy", domain.DownstreamHealth{Status: domain.HealthDown, Mode: "live", StatusCode: 503}, nil, http.StatusServiceUnavailable},
		{"cache error", domain.DownstreamHealth{}, errors.New("redis down"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		ctrl := gomock.NewController(t)
		reporter := mock_system.NewMockHealthReporter(ctrl)
		reporter.EXPECT().Downstream(gomock.Any()).Return(tc.health, tc.err).Times(1)

		rr := httptest.NewRecorder()
		system.NewHandler(newTestLogger(), reporter).
			DownstreamHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health/downstream", nil))

		if rr.Code != tc.code {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.code, rr.Code)
		}
		if tc.err == nil {
			var got domain.DownstreamHealth
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil || got.Status != tc.health.Status {
				t.Fatalf("%s: body %s (%v)", tc.name, rr.Body.String(), err)
			}
		}
		ctrl.Finish()
	}
}
