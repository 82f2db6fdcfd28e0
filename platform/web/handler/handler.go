package handler

import (
	"github.com/gin-gonic/gin"
)

// Error is the standard error response body.
type Error struct {
	Message string `json:"message" example:"something went wrong"`
}

// Result carries the status code and body a handler wants written.
type Result struct {
	Status int
	Body   any
}

// Wrapper adapts a Result returning handler into a gin handler.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
