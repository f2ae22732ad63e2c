package downstream

import (
	"errors"
	"fmt"

	"netanyaRelay/pkg/e"
)

type Kind string

const (
	KindUnavailable Kind = "unavailable"
	KindRejected    Kind = "rejected"
	KindProtocol    Kind = "protocol"
)

// Error is returned for every failed call. StatusCode is 0 when no HTTP
// response was received; Body and Detail are for logs only.
type Error struct {
	Kind       Kind
	StatusCode int
	ResultCode int
	Body       string
	Detail     string
	Cause      error
}

func (err *Error) Error() string {
	msg := fmt.Sprintf("downstream %s", err.Kind)
	if err.StatusCode != 0 {
		msg += fmt.Sprintf(" (http %d)", err.StatusCode)
	}
	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	return msg
}

func (err *Error) Unwrap() error { return err.Cause }

// Timeout reports whether the call ran out of time rather than failing fast.
func (err *Error) Timeout() bool {
	return err.Kind == KindUnavailable && errors.Is(err.Cause, e.ErrDeadline)
}

const maxBodyEcho = 4 << 10

func truncate(b []byte) string {
	if len(b) > maxBodyEcho {
		return string(b[:maxBodyEcho]) + "..."
	}
	return string(b)
}
