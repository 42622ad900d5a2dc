// controller/token_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/edusphere/integration/errors"
	"github.com/edusphere/integration/model"
	"github.com/edusphere/integration/token"
	"github.com/edusphere/integration/util"
)

type TokenController struct {
	authority token.IAuthority
}

func NewTokenController(authority token.IAuthority) *TokenController {
	return &TokenController{
		authority: authority,
	}
}

// RegisterRoutes registers the token issuance routes
func (tc *TokenController) RegisterRoutes(r gin.IRoutes) {
	r.POST("/token/service", tc.CreateServiceToken)
}

// CreateServiceToken endpoint: issues a 30-minute bearer token identifying a
// calling service.
func (tc *TokenController) CreateServiceToken(c *gin.Context) {
	var req model.ServiceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "service_name is required", err)
		return
	}

	accessToken, err := tc.authority.Issue(model.Claims{
		ServiceName: req.ServiceName,
		Scopes:      []string{"service"},
	}, 0)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to issue token", gw_errors.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, model.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
