// audit/service.go
package audit

import (
	"context"
	"fmt"

	"github.com/edusphere/integration/util"
)

type Service interface {
	Record(ctx context.Context, entry Entry) error
}

type service struct {
	repo Repository
}

// NewService creates the audit service and subscribes it to dispatch events
// on the bus. Recording happens on the bus worker, off the request path.
func NewService(repo Repository, eventBus *util.EventBus) Service {
	s := &service{repo: repo}
	eventBus.Subscribe(EventProxyDispatched, func(ctx context.Context, event util.Event) error {
		entry, ok := event.Payload.(Entry)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", event.Payload, event.Type)
		}
		return s.Record(ctx, entry)
	})
	return s
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	return s.repo.Record(ctx, entry)
}
