package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/entry"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// Get godoc
// @Summary Calendar stats
// @Description Per-date entry counts for the current user's journal, plus totals
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entry.Stats
// @Failure 401 {object} handler.Error
// @Router /v1/stats [get]
func Get(ctx *gin.Context) handler.Result {
	entries, err := entry.Load(ctx, mid.User(ctx))
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   entry.Summarize(entries),
	}
}
