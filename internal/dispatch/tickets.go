package dispatch

import (
	"fmt"
	"sync/atomic"
	"time"
)

const TicketPrefix = "NETANYA"

// TicketGenerator produces NETANYA-<year>-<6 digits> ids for simulated mode.
// The first three digits come from the clock's milliseconds, the last three
// from a counter, so two ids collide only when their counters are a multiple
// of 1000 apart and land on the same millisecond.
type TicketGenerator struct {
	now     func() time.Time
	counter atomic.Int64
}

func NewTicketGenerator(now func() time.Time) *TicketGenerator {
	if now == nil {
		now = time.Now
	}
	return &TicketGenerator{now: now}
}

func (g *TicketGenerator) Next() string {
	t := g.now()
	n := t.UnixMilli()%1000*1000 + g.counter.Add(1)%1000
	return fmt.Sprintf("%s-%d-%06d", TicketPrefix, t.Year(), n)
}
