// health/monitor.go
package health

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edusphere/integration/model"
)

// DefaultTimeout bounds each dependency probe.
const DefaultTimeout = 5 * time.Second

// IMonitor defines the interface for dependency health checks
type IMonitor interface {
	Check(ctx context.Context) model.HealthReport
}

// Monitor polls the immediate upstream gateways. Probe failures are always
// recovered into a status string; Check never returns an error.
type Monitor struct {
	gatewayURL  string
	externalURL string
	client      *http.Client
	timeout     time.Duration
}

var _ IMonitor = &Monitor{}

// NewMonitor creates a Monitor. externalURL may be empty, in which case the
// external platform is reported as not_configured. A non-positive timeout
// falls back to 5 seconds.
func NewMonitor(gatewayURL, externalURL string, timeout time.Duration) *Monitor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Monitor{
		gatewayURL:  gatewayURL,
		externalURL: externalURL,
		client:      &http.Client{},
		timeout:     timeout,
	}
}

// Check probes both platforms concurrently and reports the combined status.
// The overall status is degraded when any probed dependency is not healthy.
func (m *Monitor) Check(ctx context.Context) model.HealthReport {
	report := model.HealthReport{
		ExternalPlatform: model.StatusNotConfigured,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.OurPlatform = m.probe(ctx, m.gatewayURL)
		return nil
	})
	if m.externalURL != "" {
		g.Go(func() error {
			report.ExternalPlatform = m.probe(ctx, m.externalURL)
			return nil
		})
	}
	g.Wait()

	report.Status = model.StatusHealthy
	if report.OurPlatform != model.StatusHealthy {
		report.Status = model.StatusDegraded
	}
	if report.ExternalPlatform != model.StatusHealthy && report.ExternalPlatform != model.StatusNotConfigured {
		report.Status = model.StatusDegraded
	}
	return report
}

// probe calls the dependency's /health endpoint and maps the outcome onto a
// status string.
func (m *Monitor) probe(ctx context.Context, baseURL string) string {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return model.StatusUnreachable
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return model.StatusUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return model.StatusHealthy
	}
	return model.StatusUnhealthy
}
