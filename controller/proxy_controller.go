// controller/proxy_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gw_errors "github.com/edusphere/integration/errors"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/proxy"
	"github.com/edusphere/integration/util"
)

type ProxyController struct {
	dispatcher proxy.IDispatcher
}

func NewProxyController(dispatcher proxy.IDispatcher) *ProxyController {
	return &ProxyController{
		dispatcher: dispatcher,
	}
}

// RegisterRoutes registers the generic proxy route. The route group is
// expected to carry token verification.
func (pc *ProxyController) RegisterRoutes(r gin.IRoutes) {
	r.POST("/proxy", pc.Proxy)
}

// Proxy endpoint: dispatches one arbitrary downstream call and returns the
// normalized envelope. The downstream status code is preserved inside the
// envelope, not adopted as this route's own status.
func (pc *ProxyController) Proxy(c *gin.Context) {
	var req model.ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid proxy request", gw_errors.ErrInvalidProxyRequest)
		return
	}

	logger.Info("Dispatching proxy request",
		zap.String("service", req.Service),
		zap.String("endpoint", req.Endpoint),
		zap.String("caller", util.CallerFromContext(c)))

	resp, err := pc.dispatcher.Dispatch(c, req, 0)
	if err != nil {
		respondDispatchError(c, req.Service, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondDispatchError maps dispatcher errors onto the HTTP surface shared by
// the proxy and pass-through routes.
func respondDispatchError(c *gin.Context, service string, err error) {
	switch {
	case errors.Is(err, gw_errors.ErrServiceNotFound):
		util.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Service '%s' not found", service), err)
	case errors.Is(err, gw_errors.ErrServiceNotConfigured):
		util.RespondWithError(c, http.StatusServiceUnavailable, fmt.Sprintf("Service '%s' not configured", service), err)
	case errors.Is(err, gw_errors.ErrUnsupportedMethod):
		util.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("Unsupported method: %s", errorReason(err)), err)
	case errors.Is(err, gw_errors.ErrServiceUnavailable):
		util.RespondWithError(c, http.StatusServiceUnavailable, fmt.Sprintf("Service unavailable: %s", errorReason(err)), err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", gw_errors.ErrInternalServer)
	}
}

// errorReason strips the sentinel prefix, leaving only the originating detail.
func errorReason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
