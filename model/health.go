// model/health.go
package model

// Dependency health states reported by GET /health.
const (
	StatusHealthy       = "healthy"
	StatusUnhealthy     = "unhealthy"
	StatusUnreachable   = "unreachable"
	StatusNotConfigured = "not_configured"
	StatusDegraded      = "degraded"
)

// HealthReport is the response body of GET /health. Probe failures degrade
// the overall status; they never surface as an error to the caller.
type HealthReport struct {
	Status           string `json:"status"`
	OurPlatform      string `json:"our_platform"`
	ExternalPlatform string `json:"external_platform"`
	Timestamp        string `json:"timestamp"`
}
