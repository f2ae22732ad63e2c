package e

import (
	"context"
	"errors"
	"fmt"
	"net"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternal      = errors.New("internal error")
	ErrDeadline      = errors.New("deadline exceeded")
	ErrCanceled      = errors.New("context canceled")
	ErrUnavailable   = errors.New("service unavailable")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrCacheMiss     = errors.New("cache miss")
)

// WrapError maps transport failures onto the package sentinels so callers
// can branch with errors.Is without knowing which client produced them.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	if ctx != nil && ctx.Err() != nil {
		return WrapError(context.Background(), op, ctx.Err())
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%s: %w", op, ErrDeadline)
		}
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
