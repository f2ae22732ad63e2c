package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"netanyaRelay/internal/dispatch"
	mock_dispatch "netanyaRelay/internal/dispatch/mocks"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/formdata"
)

var ticketPattern = regexp.MustCompile(`^NETANYA-\d{4}-\d{6}$`)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func request() *formdata.Request {
	return &formdata.Request{Body: []byte("--b\r\n\r\n--b--\r\n"), Boundary: "b"}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]dispatch.Mode{"simulated": dispatch.ModeSimulated, " LIVE ": dispatch.ModeLive} {
		got, err := dispatch.ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "debug", "prod"} {
		if _, err := dispatch.ParseMode(in); err == nil {
			t.Fatalf("ParseMode(%q) must fail", in)
		}
	}
}

func TestNew_LiveNeedsSender(t *testing.T) {
	t.Parallel()

	if _, err := dispatch.New(dispatch.ModeLive, nil, nil, newTestLogger()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := dispatch.New(dispatch.Mode("other"), nil, nil, newTestLogger()); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestDispatch_SimulatedNeverCallsSender(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mock_dispatch.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	d, err := dispatch.New(dispatch.ModeSimulated, sender, nil, newTestLogger())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		out, err := d.Dispatch(context.Background(), "corr", request())
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		if !out.Simulated || out.Response.ResultStatus != domain.ResultStatusCreated {
			t.Fatalf("unexpected outcome %+v", out)
		}
		if !ticketPattern.MatchString(out.Response.Data) {
			t.Fatalf("unexpected ticket id %q", out.Response.Data)
		}
		seen[out.Response.Data] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected distinct ticket ids, got %v", seen)
	}
}

func TestDispatch_LiveForwardsUnmodified(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := request()
	sender := mock_dispatch.NewMockSender(ctrl)
	sender.EXPECT().
		Send(gomock.Any(), req).
		Return(&domain.DownstreamResponse{ResultCode: 200, ResultStatus: "SUCCESS CREATE", Data: "144365"}, nil).
		Times(1)

	d, err := dispatch.New(dispatch.ModeLive, sender, nil, newTestLogger())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := d.Dispatch(context.Background(), "corr", req)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if out.Simulated || out.Response.Data != "144365" || out.Fingerprint != dispatch.Fingerprint(req.Body) {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestDispatch_LivePropagatesError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	sender := mock_dispatch.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, boom).Times(1)

	d, _ := dispatch.New(dispatch.ModeLive, sender, nil, newTestLogger())
	if _, err := d.Dispatch(context.Background(), "corr", request()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestTicketGenerator_Format(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := dispatch.NewTicketGenerator(func() time.Time { return fixed })

	a, b := g.Next(), g.Next()
	if a == b {
		t.Fatal("ticket ids must differ for the same instant")
	}
	for _, id := range []string{a, b} {
		if !ticketPattern.MatchString(id) || id[:13] != "NETANYA-2026-" {
			t.Fatalf("unexpected ticket id %q", id)
		}
	}
}

func TestTicketGenerator_UniqueAcrossMillisecondBoundaries(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	g := dispatch.NewTicketGenerator(func() time.Time {
		calls++
		return base.Add(time.Duration(calls%2) * time.Millisecond)
	})

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("duplicate ticket id %q after %d calls", id, i)
		}
		seen[id] = true
	}
}
