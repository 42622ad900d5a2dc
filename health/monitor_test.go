// health/monitor_test.go
package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edusphere/integration/health"
	"github.com/edusphere/integration/model"
)

func healthStub(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(status)
			return
		}
		http.NotFound(w, r)
	}))
}

func TestMonitor_AllHealthy(t *testing.T) {
	gateway := healthStub(http.StatusOK)
	defer gateway.Close()
	external := healthStub(http.StatusOK)
	defer external.Close()

	monitor := health.NewMonitor(gateway.URL, external.URL, time.Second)
	report := monitor.Check(context.Background())

	assert.Equal(t, model.StatusHealthy, report.Status)
	assert.Equal(t, model.StatusHealthy, report.OurPlatform)
	assert.Equal(t, model.StatusHealthy, report.ExternalPlatform)
	assert.NotEmpty(t, report.Timestamp)
}

func TestMonitor_DegradedOnNon200(t *testing.T) {
	gateway := healthStub(http.StatusInternalServerError)
	defer gateway.Close()

	monitor := health.NewMonitor(gateway.URL, "", time.Second)
	report := monitor.Check(context.Background())

	// A failing dependency degrades the report, it never raises
	assert.Equal(t, model.StatusDegraded, report.Status)
	assert.Equal(t, model.StatusUnhealthy, report.OurPlatform)
	assert.Equal(t, model.StatusNotConfigured, report.ExternalPlatform)
}

func TestMonitor_Unreachable(t *testing.T) {
	gateway := healthStub(http.StatusOK)
	gateway.Close()

	monitor := health.NewMonitor(gateway.URL, "", time.Second)
	report := monitor.Check(context.Background())

	assert.Equal(t, model.StatusDegraded, report.Status)
	assert.Equal(t, model.StatusUnreachable, report.OurPlatform)
}

func TestMonitor_ExternalUnreachableDegrades(t *testing.T) {
	gateway := healthStub(http.StatusOK)
	defer gateway.Close()
	external := healthStub(http.StatusOK)
	external.Close()

	monitor := health.NewMonitor(gateway.URL, external.URL, time.Second)
	report := monitor.Check(context.Background())

	assert.Equal(t, model.StatusDegraded, report.Status)
	assert.Equal(t, model.StatusHealthy, report.OurPlatform)
	assert.Equal(t, model.StatusUnreachable, report.ExternalPlatform)
}

func TestMonitor_NotConfiguredDoesNotDegrade(t *testing.T) {
	gateway := healthStub(http.StatusOK)
	defer gateway.Close()

	monitor := health.NewMonitor(gateway.URL, "", time.Second)
	report := monitor.Check(context.Background())

	assert.Equal(t, model.StatusHealthy, report.Status)
	assert.Equal(t, model.StatusNotConfigured, report.ExternalPlatform)
}
