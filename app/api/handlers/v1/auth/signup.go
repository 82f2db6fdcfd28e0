package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/auth"
	"github.com/hcgdev/journal-api/platform/web/handler"
)

// Signup godoc
// @Summary Register a user
// @Description Registers a username and password and opens a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body auth.Credentials true "Credentials"
// @Success 201 {object} auth.Session
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/auth/signup [post]
func Signup(ctx *gin.Context) handler.Result {
	var creds auth.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	established, err := auth.Signup(ctx, creds.Username, creds.Password)

	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, auth.ErrUsernameTooShort), errors.Is(err, auth.ErrPasswordTooShort):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   established,
		}
	}
}
