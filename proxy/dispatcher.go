// proxy/dispatcher.go
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusphere/integration/audit"
	gw_errors "github.com/edusphere/integration/errors"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/registry"
	"github.com/edusphere/integration/util"
)

// DefaultTimeout bounds each downstream call unless the caller overrides it.
const DefaultTimeout = 30 * time.Second

// IDispatcher defines the interface for generic downstream dispatch
type IDispatcher interface {
	Dispatch(ctx context.Context, req model.ProxyRequest, timeout time.Duration) (*model.ProxyResponse, error)
}

// Dispatcher resolves a logical service name and performs one downstream HTTP
// call, normalizing the response into the uniform envelope. It never retries
// and never converts a downstream status code into an error of its own.
type Dispatcher struct {
	registry *registry.ServiceRegistry
	client   *http.Client
	timeout  time.Duration
	eventBus *util.EventBus
}

var _ IDispatcher = &Dispatcher{}

// NewDispatcher creates a Dispatcher. A non-positive timeout falls back to 30
// seconds. eventBus receives one audit event per dispatched call.
func NewDispatcher(reg *registry.ServiceRegistry, timeout time.Duration, eventBus *util.EventBus) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		registry: reg,
		client:   &http.Client{},
		timeout:  timeout,
		eventBus: eventBus,
	}
}

// Dispatch performs the downstream call described by req. Validation failures
// (unknown service, unsupported method) are reported before any network I/O.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.ProxyRequest, timeout time.Duration) (*model.ProxyResponse, error) {
	baseURL, err := d.registry.Resolve(req.Service)
	if err != nil {
		return nil, err
	}

	if req.Method == "" {
		req.Method = string(model.MethodGet)
	}
	method, err := model.ParseMethod(req.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gw_errors.ErrUnsupportedMethod, req.Method)
	}

	// An empty endpoint targets the bare collection URL, no trailing slash
	targetURL := baseURL
	if endpoint := strings.TrimLeft(req.Endpoint, "/"); endpoint != "" {
		targetURL += "/" + endpoint
	}
	if timeout <= 0 {
		timeout = d.timeout
	}

	start := time.Now()
	resp, err := d.do(ctx, method, targetURL, req, timeout)
	d.publishAudit(ctx, req, method, resp, start, err)
	if err != nil {
		logger.Error("Downstream call failed",
			zap.String("service", req.Service),
			zap.String("url", targetURL),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", gw_errors.ErrServiceUnavailable, err)
	}

	logger.Debug("Downstream call completed",
		zap.String("service", req.Service),
		zap.String("url", targetURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))
	return resp, nil
}

// do builds and executes the HTTP request and normalizes the response.
func (d *Dispatcher) do(ctx context.Context, method model.Method, targetURL string, req model.ProxyRequest, timeout time.Duration) (*model.ProxyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if method.HasBody() && req.Data != nil {
		payload, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(method), targetURL, body)
	if err != nil {
		return nil, err
	}

	if len(req.Params) > 0 {
		query := url.Values{}
		for k, v := range req.Params {
			query.Set(k, v)
		}
		httpReq.URL.RawQuery = query.Encode()
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	// JSON body when it parses, raw text otherwise
	var content interface{}
	if err := json.Unmarshal(raw, &content); err != nil {
		content = string(raw)
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k, v := range httpResp.Header {
		headers[k] = strings.Join(v, ", ")
	}

	return &model.ProxyResponse{
		StatusCode: httpResp.StatusCode,
		Content:    content,
		Headers:    headers,
	}, nil
}

// publishAudit hands the call record to the event bus worker.
func (d *Dispatcher) publishAudit(ctx context.Context, req model.ProxyRequest, method model.Method, resp *model.ProxyResponse, start time.Time, callErr error) {
	if d.eventBus == nil {
		return
	}

	entry := audit.Entry{
		ID:        uuid.NewString(),
		Timestamp: start,
		Service:   req.Service,
		Endpoint:  req.Endpoint,
		Method:    string(method),
		Duration:  time.Since(start),
	}
	if caller, ok := ctx.Value("caller").(string); ok {
		entry.Caller = caller
	}
	if resp != nil {
		entry.StatusCode = resp.StatusCode
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}

	d.eventBus.Publish(ctx, audit.EventProxyDispatched, entry)
}
