package responses

import "time"

type Health struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Checks    map[string]HealthCheck `json:"checks"`
	Timestamp time.Time              `json:"timestamp"`
}

type HealthCheck struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthCheckStatusUp   = "up"
	HealthCheckStatusDown = "down"
	HealthCheckStatusMock = "mock"
)
