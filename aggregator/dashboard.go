// aggregator/dashboard.go
package aggregator

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/proxy"
)

// IAggregator defines the interface for composite endpoints
type IAggregator interface {
	GetUserDashboard(ctx context.Context, userID string) (*model.Dashboard, error)
}

// Aggregator fans a single inbound request out into several independent
// downstream calls and merges the settled results into one document,
// tolerating partial failure.
type Aggregator struct {
	dispatcher proxy.IDispatcher
}

var _ IAggregator = &Aggregator{}

// NewAggregator creates a new instance of Aggregator
func NewAggregator(dispatcher proxy.IDispatcher) *Aggregator {
	return &Aggregator{dispatcher: dispatcher}
}

// callResult is the settled outcome of one fan-out call. Exactly one of the
// fields is meaningful; assembly pattern-matches over five of these instead of
// letting any single failure propagate.
type callResult struct {
	resp *model.ProxyResponse
	err  error
}

// content returns the decoded payload, or the fallback when the call failed.
// A non-2xx downstream status still counts as a settled payload.
func (r callResult) content(fallback interface{}) interface{} {
	if r.err != nil {
		return fallback
	}
	return r.resp.Content
}

// GetUserDashboard issues the five dashboard calls concurrently and assembles
// the composite once every call has settled. Individual failures degrade to
// per-field placeholders and never abort the remaining calls; latency is
// bounded by the slowest call, not the sum.
func (a *Aggregator) GetUserDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	var user, assignments, quizzes, grades, analytics callResult

	requests := []struct {
		req    model.ProxyRequest
		result *callResult
	}{
		{model.ProxyRequest{Service: "external_user", Endpoint: userID, Method: "GET"}, &user},
		{model.ProxyRequest{Service: "assignment", Method: "GET", Params: map[string]string{"user_id": userID}}, &assignments},
		{model.ProxyRequest{Service: "quiz", Method: "GET", Params: map[string]string{"user_id": userID}}, &quizzes},
		{model.ProxyRequest{Service: "grading", Endpoint: "student/" + userID, Method: "GET"}, &grades},
		{model.ProxyRequest{Service: "external_analytics", Method: "GET", Params: map[string]string{"user_id": userID}}, &analytics},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range requests {
		r := r
		g.Go(func() error {
			// Failures settle into the result slot; returning nil keeps the
			// group from cancelling the sibling calls.
			resp, err := a.dispatcher.Dispatch(ctx, r.req, 0)
			*r.result = callResult{resp: resp, err: err}
			if err != nil {
				logger.Warn("Dashboard fan-out call failed",
					zap.String("service", r.req.Service),
					zap.String("userID", userID),
					zap.Error(err))
			}
			return nil
		})
	}
	g.Wait()

	userContent := user.content(nil)
	if user.err != nil {
		userContent = map[string]interface{}{"error": user.err.Error()}
	}

	dashboard := &model.Dashboard{
		User: userContent,
		Academic: model.AcademicSummary{
			Assignments: assignments.content([]interface{}{}),
			Quizzes:     quizzes.content([]interface{}{}),
			Grades:      grades.content([]interface{}{}),
		},
		Analytics:   analytics.content(map[string]interface{}{}),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return dashboard, nil
}
