package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/app/api/handlers/v1/auth"
	"github.com/hcgdev/journal-api/app/api/handlers/v1/drafts"
	"github.com/hcgdev/journal-api/app/api/handlers/v1/entries"
	"github.com/hcgdev/journal-api/app/api/handlers/v1/healthcheck"
	"github.com/hcgdev/journal-api/app/api/handlers/v1/stats"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.POST("/v1/auth/signup", handler.Wrapper(auth.Signup))
	r.POST("/v1/auth/login", handler.Wrapper(auth.Login))

	authed := r.Group("/v1", mid.Authenticate())
	authed.POST("/auth/logout", handler.Wrapper(auth.Logout))
	authed.GET("/auth/me", handler.Wrapper(auth.Me))
	authed.GET("/entries", handler.Wrapper(entries.List))
	authed.POST("/entries", handler.Wrapper(entries.Create))
	authed.DELETE("/entries/:id", handler.Wrapper(entries.Delete))
	authed.GET("/stats", handler.Wrapper(stats.Get))
	authed.POST("/drafts", handler.Wrapper(drafts.Generate))
}
