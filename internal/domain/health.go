package domain

import "time"

type HealthStatus string

const (
	HealthUp        HealthStatus = "healthy"
	HealthDown      HealthStatus = "unhealthy"
	HealthSimulated HealthStatus = "simulated"
	HealthUnknown   HealthStatus = "unknown"
)

// DownstreamHealth is the last probe result for the ticketing endpoint.
type DownstreamHealth struct {
	Status     HealthStatus `json:"status"`
	Mode       string       `json:"mode"`
	StatusCode int          `json:"status_code,omitempty"`
	LatencyMS  int64        `json:"latency_ms"`
	Error      string       `json:"error,omitempty"`
	CheckedAt  time.Time    `json:"checked_at"`
}
