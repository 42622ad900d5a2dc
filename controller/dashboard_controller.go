// controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/integration/aggregator"
	"github.com/edusphere/integration/util"
)

type DashboardController struct {
	aggregator aggregator.IAggregator
}

func NewDashboardController(agg aggregator.IAggregator) *DashboardController {
	return &DashboardController{
		aggregator: agg,
	}
}

// RegisterRoutes registers the integrated endpoints
func (dc *DashboardController) RegisterRoutes(r gin.IRoutes) {
	r.GET("/integrated/user/:user_id/dashboard", dc.GetUserDashboard)
}

// GetUserDashboard endpoint: one composite document combining data from our
// own and the partner platform's services. Individual downstream failures are
// degraded inside the document; only an assembly failure surfaces as 500.
func (dc *DashboardController) GetUserDashboard(c *gin.Context) {
	userID := c.Param("user_id")

	dashboard, err := dc.aggregator.GetUserDashboard(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Error generating dashboard: "+err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
