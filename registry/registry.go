// registry/registry.go
package registry

import (
	"fmt"

	gw_errors "github.com/edusphere/integration/errors"
	"github.com/edusphere/integration/model"
)

// serviceEntry is one registry row. URL is empty when the owning gateway was
// never configured; resolving such an entry fails with ErrServiceNotConfigured
// instead of ErrServiceNotFound so callers can answer 503 rather than 404.
type serviceEntry struct {
	name     string
	display  string
	url      string
	internal bool
}

// ServiceRegistry is the static name -> base URL mapping for every downstream
// the integration layer may call. Loaded once at startup and read-only
// afterwards, so no locking is needed.
type ServiceRegistry struct {
	entries map[string]serviceEntry
	order   []string
}

// internalServices maps our platform's logical names to the path each service
// is mounted under on our API gateway.
var internalServices = []struct{ name, path string }{
	{"assignment", "/assignments"},
	{"grading", "/grades"},
	{"quiz", "/quizzes"},
	{"forum", "/forum"},
	{"content", "/content"},
}

// externalServices maps the partner platform's logical names to their mount
// paths on the partner gateway. The display name is the short form listed by
// /services; the prefixed name is what Resolve and the proxy routes use.
var externalServices = []struct{ name, display, path string }{
	{"external_user", "user", "/users"},
	{"external_notification", "notification", "/notifications"},
	{"external_payment", "payment", "/payments"},
	{"external_analytics", "analytics", "/analytics"},
}

// NewServiceRegistry builds the registry from the two gateway base URLs.
// externalURL may be empty; the external entries are then present but
// unconfigured.
func NewServiceRegistry(gatewayURL, externalURL string) *ServiceRegistry {
	r := &ServiceRegistry{entries: make(map[string]serviceEntry)}

	for _, svc := range internalServices {
		r.add(serviceEntry{name: svc.name, display: svc.name, url: joinBase(gatewayURL, svc.path), internal: true})
	}
	for _, svc := range externalServices {
		r.add(serviceEntry{name: svc.name, display: svc.display, url: joinBase(externalURL, svc.path)})
	}
	return r
}

func (r *ServiceRegistry) add(e serviceEntry) {
	r.entries[e.name] = e
	r.order = append(r.order, e.name)
}

func joinBase(base, path string) string {
	if base == "" {
		return ""
	}
	return base + path
}

// Resolve returns the base URL for a logical service name.
func (r *ServiceRegistry) Resolve(name string) (string, error) {
	entry, ok := r.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", gw_errors.ErrServiceNotFound, name)
	}
	if entry.url == "" {
		return "", fmt.Errorf("%w: %s", gw_errors.ErrServiceNotConfigured, name)
	}
	return entry.url, nil
}

// List returns every registered service partitioned into our own and external
// groups, in registration order.
func (r *ServiceRegistry) List() model.ServiceList {
	list := model.ServiceList{
		OurServices:      []model.ServiceDescriptor{},
		ExternalServices: []model.ServiceDescriptor{},
	}
	for _, name := range r.order {
		entry := r.entries[name]
		desc := model.ServiceDescriptor{Name: entry.display, URL: entry.url}
		if entry.internal {
			list.OurServices = append(list.OurServices, desc)
		} else {
			list.ExternalServices = append(list.ExternalServices, desc)
		}
	}
	return list
}
