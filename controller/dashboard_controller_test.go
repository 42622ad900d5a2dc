// controller/dashboard_controller_test.go
package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/edusphere/integration/model"
)

func TestDashboardController(t *testing.T) {
	t.Run("GetUserDashboard_Success", func(t *testing.T) {
		f := newFixture(t)
		f.aggregator.EXPECT().
			GetUserDashboard(gomock.Any(), "42").
			Return(&model.Dashboard{
				User: map[string]interface{}{"id": "42"},
				Academic: model.AcademicSummary{
					Assignments: []interface{}{},
					Quizzes:     []interface{}{},
					Grades:      []interface{}{},
				},
				Analytics:   map[string]interface{}{},
				GeneratedAt: "2025-01-01T00:00:00Z",
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/integrated/user/42/dashboard", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body model.Dashboard
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"id": "42"}, body.User)
		assert.Equal(t, "2025-01-01T00:00:00Z", body.GeneratedAt)
	})

	t.Run("GetUserDashboard_AssemblyFailure", func(t *testing.T) {
		f := newFixture(t)
		f.aggregator.EXPECT().
			GetUserDashboard(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("assembly failed"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/integrated/user/42/dashboard", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error generating dashboard")
	})
}
