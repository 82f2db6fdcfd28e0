package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/auth"
	"github.com/hcgdev/journal-api/platform/web/handler"
)

// Login godoc
// @Summary Log a user in
// @Description Checks credentials and opens a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body auth.Credentials true "Credentials"
// @Success 200 {object} auth.Session
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/auth/login [post]
func Login(ctx *gin.Context) handler.Result {
	var creds auth.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	established, err := auth.Login(ctx, creds.Username, creds.Password)

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   established,
		}
	}
}
