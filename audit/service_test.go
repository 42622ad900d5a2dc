// audit/service_test.go
package audit_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/edusphere/integration/audit"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/test/mock"
	"github.com/edusphere/integration/util"
)

func TestMain(m *testing.M) {
	logger.InitLogger("../logging")
	defer logger.Sync()
	os.Exit(m.Run())
}

func TestService_RecordsDispatchEvents(t *testing.T) {
	repo := new(mock.MockAuditRepository)
	recorded := make(chan audit.Entry, 1)
	repo.On("Record", tmock.Anything, tmock.Anything).
		Run(func(args tmock.Arguments) {
			recorded <- args.Get(1).(audit.Entry)
		}).
		Return(nil)

	eventBus := util.NewEventBus()
	audit.NewService(repo, eventBus)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	entry := audit.Entry{
		ID:         "e-1",
		Timestamp:  time.Now(),
		Service:    "assignment",
		Endpoint:   "42",
		Method:     "GET",
		StatusCode: 200,
	}
	eventBus.Publish(ctx, audit.EventProxyDispatched, entry)

	select {
	case got := <-recorded:
		assert.Equal(t, "e-1", got.ID)
		assert.Equal(t, "assignment", got.Service)
	case <-time.After(time.Second):
		t.Fatal("entry was not recorded")
	}
	repo.AssertExpectations(t)
}

func TestService_IgnoresForeignPayloads(t *testing.T) {
	repo := new(mock.MockAuditRepository)

	eventBus := util.NewEventBus()
	audit.NewService(repo, eventBus)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	eventBus.Publish(ctx, audit.EventProxyDispatched, "not-an-entry")
	time.Sleep(50 * time.Millisecond)

	repo.AssertNotCalled(t, "Record", tmock.Anything, tmock.Anything)
}
