package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/auth"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// Me godoc
// @Summary Current user
// @Description Returns the username behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} handler.Error
// @Router /v1/auth/me [get]
func Me(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   auth.User{Username: mid.User(ctx)},
	}
}
