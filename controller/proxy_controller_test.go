// controller/proxy_controller_test.go
package controller_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/edusphere/integration/controller"
	gw_errors "github.com/edusphere/integration/errors"
	"github.com/edusphere/integration/health"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/metrics"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/registry"
	"github.com/edusphere/integration/router"
	"github.com/edusphere/integration/token"
	mock_service "github.com/edusphere/integration/test/service_mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("../logging")
	defer logger.Sync()
	os.Exit(m.Run())
}

type fixture struct {
	router     *gin.Engine
	dispatcher *mock_service.MockIDispatcher
	aggregator *mock_service.MockIAggregator
	authority  *token.Authority
}

// newFixture wires the full router with mocked dispatcher and aggregator and
// a real token authority.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	dispatcher := mock_service.NewMockIDispatcher(ctrl)
	agg := mock_service.NewMockIAggregator(ctrl)
	authority := token.NewAuthority("test-secret", 30*time.Minute)
	reg := registry.NewServiceRegistry("http://gateway:8000", "http://partner:9000")
	monitor := health.NewMonitor("http://gateway:8000", "", time.Second)
	collector := metrics.NewCollector()

	controllers := controller.InitializeControllers(dispatcher, authority, agg, monitor, reg, collector)
	engine := router.SetupRouter(controllers, authority, collector, router.Options{})

	return &fixture{router: engine, dispatcher: dispatcher, aggregator: agg, authority: authority}
}

func (f *fixture) bearer(t *testing.T) string {
	issued, err := f.authority.Issue(model.Claims{ServiceName: "test-suite", Scopes: []string{"service"}}, time.Minute)
	assert.NoError(t, err)
	return "Bearer " + issued
}

func (f *fixture) doProxy(t *testing.T, body string, authorized bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/proxy", strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", f.bearer(t))
	}
	f.router.ServeHTTP(w, req)
	return w
}

func TestProxyController(t *testing.T) {
	t.Run("Proxy_RequiresToken", func(t *testing.T) {
		f := newFixture(t)
		w := f.doProxy(t, `{"service":"assignment","endpoint":"1","method":"GET"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Proxy_RejectsGarbageToken", func(t *testing.T) {
		f := newFixture(t)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/proxy", strings.NewReader(`{"service":"quiz"}`))
		req.Header.Set("Authorization", "Bearer not-a-token")
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Proxy_Success_PreservesDownstreamStatus", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.ProxyResponse{
				StatusCode: http.StatusNotFound,
				Content:    map[string]interface{}{"detail": "quiz not found"},
				Headers:    map[string]string{"Content-Type": "application/json"},
			}, nil)

		w := f.doProxy(t, `{"service":"quiz","endpoint":"q-1","method":"GET"}`, true)

		// The route succeeds; the downstream 404 lives inside the envelope
		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.ProxyResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, map[string]interface{}{"detail": "quiz not found"}, resp.Content)
	})

	t.Run("Proxy_UnknownService", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: billing", gw_errors.ErrServiceNotFound))

		w := f.doProxy(t, `{"service":"billing","method":"GET"}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Service 'billing' not found")
	})

	t.Run("Proxy_UnsupportedMethod", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: PATCH", gw_errors.ErrUnsupportedMethod))

		w := f.doProxy(t, `{"service":"quiz","method":"PATCH"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unsupported method: PATCH")
	})

	t.Run("Proxy_DownstreamUnavailable", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: connection refused", gw_errors.ErrServiceUnavailable))

		w := f.doProxy(t, `{"service":"quiz","method":"GET"}`, true)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Service unavailable: connection refused", body["detail"])
	})

	t.Run("Proxy_NotConfigured", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: external_payment", gw_errors.ErrServiceNotConfigured))

		w := f.doProxy(t, `{"service":"external_payment","method":"GET"}`, true)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})

	t.Run("Proxy_InvalidBody", func(t *testing.T) {
		f := newFixture(t)
		w := f.doProxy(t, `{"endpoint": 12}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExternalPassThrough(t *testing.T) {
	t.Run("External_GET", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req model.ProxyRequest, timeout time.Duration) (*model.ProxyResponse, error) {
				assert.Equal(t, "external_user", req.Service)
				assert.Equal(t, "42", req.Endpoint)
				assert.Equal(t, "GET", req.Method)
				return &model.ProxyResponse{
					StatusCode: http.StatusOK,
					Content:    map[string]interface{}{"id": "42"},
				}, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/external/users/42", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"42"}`, w.Body.String())
	})

	t.Run("External_POST_ForwardsBody", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req model.ProxyRequest, timeout time.Duration) (*model.ProxyResponse, error) {
				assert.Equal(t, "external_notification", req.Service)
				assert.Equal(t, map[string]interface{}{"message": "hi"}, req.Data)
				return &model.ProxyResponse{StatusCode: http.StatusCreated, Content: map[string]interface{}{"sent": true}}, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/external/notifications", strings.NewReader(`{"message":"hi"}`))
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("External_UnknownSegment", func(t *testing.T) {
		f := newFixture(t)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/external/billing/1", nil)
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("External_StatusPassesThrough", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.ProxyResponse{StatusCode: http.StatusBadGateway, Content: "upstream broke"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/external/analytics", nil)
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
