// controller/controllers.go
package controller

import (
	"github.com/edusphere/integration/aggregator"
	"github.com/edusphere/integration/health"
	"github.com/edusphere/integration/metrics"
	"github.com/edusphere/integration/proxy"
	"github.com/edusphere/integration/registry"
	"github.com/edusphere/integration/token"
)

type Controllers struct {
	Proxy     *ProxyController
	External  *ExternalController
	Token     *TokenController
	Dashboard *DashboardController
	System    *SystemController
}

func InitializeControllers(
	dispatcher proxy.IDispatcher,
	authority token.IAuthority,
	agg aggregator.IAggregator,
	monitor health.IMonitor,
	reg *registry.ServiceRegistry,
	collector *metrics.Collector,
) *Controllers {
	return &Controllers{
		Proxy:     NewProxyController(dispatcher),
		External:  NewExternalController(dispatcher),
		Token:     NewTokenController(authority),
		Dashboard: NewDashboardController(agg),
		System:    NewSystemController(monitor, reg, collector),
	}
}
