package entries

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/entry"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// List godoc
// @Summary List journal entries
// @Description Lists the current user's entries, most recently created first, optionally only those on one date
// @Tags Entries
// @Produce json
// @Security BearerAuth
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} entry.Entry
// @Failure 401 {object} handler.Error
// @Router /v1/entries [get]
func List(ctx *gin.Context) handler.Result {
	user := mid.User(ctx)

	entries, err := entry.Load(ctx, user)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	filtered := entry.Filter(entries, ctx.Query("date"))

	return handler.Result{
		Status: http.StatusOK,
		Body:   entry.SortByCreatedDesc(filtered),
	}
}
