package dispatch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/formdata"
	"netanyaRelay/pkg/e"
)

type Mode string

const (
	ModeSimulated Mode = "simulated"
	ModeLive      Mode = "live"
)

// ParseMode accepts only the two known modes; there is no default.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSimulated:
		return ModeSimulated, nil
	case ModeLive:
		return ModeLive, nil
	default:
		return "", fmt.Errorf("dispatch mode %q: %w", s, e.ErrInvalidConfig)
	}
}

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock.go
type Sender interface {
	Send(ctx context.Context, req *formdata.Request) (*domain.DownstreamResponse, error)
}

// Outcome is what the dispatcher got back, before normalization.
type Outcome struct {
	Response    domain.DownstreamResponse
	Simulated   bool
	Fingerprint string
}

// Dispatcher routes a built request according to a mode fixed at construction.
type Dispatcher struct {
	mode    Mode
	sender  Sender
	tickets *TicketGenerator
	logger  *slog.Logger
}

// New wires the dispatcher. In simulated mode the sender is dropped so no code
// path can reach the network.
func New(mode Mode, sender Sender, tickets *TicketGenerator, logger *slog.Logger) (*Dispatcher, error) {
	d := &Dispatcher{mode: mode, logger: logger}
	switch mode {
	case ModeSimulated:
		if tickets == nil {
			tickets = NewTicketGenerator(nil)
		}
		d.tickets = tickets
	case ModeLive:
		if sender == nil {
			return nil, fmt.Errorf("live mode needs a downstream sender: %w", e.ErrInvalidConfig)
		}
		d.sender = sender
	default:
		return nil, fmt.Errorf("dispatch mode %q: %w", mode, e.ErrInvalidConfig)
	}
	return d, nil
}

func (d *Dispatcher) Mode() Mode {
	return d.mode
}

func (d *Dispatcher) Dispatch(ctx context.Context, correlationID string, req *formdata.Request) (*Outcome, error) {
	fp := Fingerprint(req.Body)
	log := d.logger.With(
		slog.String("correlation_id", correlationID),
		slog.String("mode", string(d.mode)),
		slog.String("body_sha256", fp),
		slog.Int("body_bytes", len(req.Body)),
	)

	if d.mode == ModeSimulated {
		resp := domain.DownstreamResponse{
			ResultCode:   domain.ResultCodeOK,
			ResultStatus: domain.ResultStatusCreated,
			Data:         d.tickets.Next(),
		}
		log.Info("simulated submission", slog.String("ticket_id", resp.Data))
		return &Outcome{Response: resp, Simulated: true, Fingerprint: fp}, nil
	}

	log.Info("forwarding submission")
	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Outcome{Response: *resp, Fingerprint: fp}, nil
}

// Fingerprint is a short digest of the outgoing body for log correlation.
func Fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:8])
}
