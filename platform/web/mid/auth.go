package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/auth"
	"github.com/hcgdev/journal-api/platform/web/handler"
)

const (
	userKey  = "session-user"
	tokenKey = "session-token"
)

// Authenticate resolves the bearer token into the session user and aborts
// with 401 when there is none.
func Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "missing bearer token"})
			return
		}

		user, ok, err := auth.Current(ctx, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, handler.Error{Message: err.Error()})
			return
		}
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "invalid or expired session"})
			return
		}

		ctx.Set(userKey, user)
		ctx.Set(tokenKey, token)
		ctx.Next()
	}
}

// User returns the authenticated username set by Authenticate.
func User(ctx *gin.Context) string {
	return ctx.GetString(userKey)
}

// Token returns the session token set by Authenticate.
func Token(ctx *gin.Context) string {
	return ctx.GetString(tokenKey)
}
