// controller/external_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/edusphere/integration/errors"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/proxy"
	"github.com/edusphere/integration/util"
)

// externalRoutes maps the first /external path segment onto the registered
// partner service behind it.
var externalRoutes = map[string]string{
	"users":         "external_user",
	"notifications": "external_notification",
	"payments":      "external_payment",
	"analytics":     "external_analytics",
}

type ExternalController struct {
	dispatcher proxy.IDispatcher
}

func NewExternalController(dispatcher proxy.IDispatcher) *ExternalController {
	return &ExternalController{
		dispatcher: dispatcher,
	}
}

// RegisterRoutes registers the direct pass-through routes to the external
// partner services.
func (ec *ExternalController) RegisterRoutes(r gin.IRoutes) {
	r.GET("/external/*path", ec.PassThrough)
	r.POST("/external/*path", ec.PassThrough)
}

// PassThrough endpoint: forwards the request to the external partner service
// selected by the first path segment, with the same error mapping as /proxy.
func (ec *ExternalController) PassThrough(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	segment, endpoint, _ := strings.Cut(path, "/")

	service, ok := externalRoutes[segment]
	if !ok {
		util.RespondWithError(c, http.StatusNotFound, "Unknown external service: "+segment, gw_errors.ErrServiceNotFound)
		return
	}

	req := model.ProxyRequest{
		Service:  service,
		Endpoint: endpoint,
		Method:   c.Request.Method,
		Params:   flattenQuery(c),
	}
	if c.Request.Method == http.MethodPost {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid request body", gw_errors.ErrInvalidProxyRequest)
			return
		}
		req.Data = body
	}

	resp, err := ec.dispatcher.Dispatch(c, req, 0)
	if err != nil {
		respondDispatchError(c, req.Service, err)
		return
	}

	c.JSON(resp.StatusCode, resp.Content)
}

func flattenQuery(c *gin.Context) map[string]string {
	query := c.Request.URL.Query()
	if len(query) == 0 {
		return nil
	}
	params := make(map[string]string, len(query))
	for k, v := range query {
		params[k] = v[0]
	}
	return params
}
