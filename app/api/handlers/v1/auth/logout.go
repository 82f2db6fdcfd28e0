package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/auth"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// Logout godoc
// @Summary Log the current user out
// @Description Drops the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} handler.Error
// @Router /v1/auth/logout [post]
func Logout(ctx *gin.Context) handler.Result {
	if err := auth.Logout(ctx, mid.Token(ctx)); err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{Status: http.StatusNoContent}
}
