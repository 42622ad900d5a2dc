// audit/model.go
package audit

import "time"

// EventProxyDispatched is published on the event bus after every dispatched
// downstream call.
const EventProxyDispatched = "proxy.dispatched"

// Entry records one dispatched downstream call.
type Entry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Service    string        `json:"service"`
	Endpoint   string        `json:"endpoint"`
	Method     string        `json:"method"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration_ns"`
	Caller     string        `json:"caller,omitempty"`
	Error      string        `json:"error,omitempty"`
}
