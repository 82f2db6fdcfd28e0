package entries

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/entry"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// Delete godoc
// @Summary Delete a journal entry
// @Description Removes the entry with the given id; deleting an unknown id is a no-op
// @Tags Entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Router /v1/entries/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	user := mid.User(ctx)

	entries, err := entry.Load(ctx, user)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	if err := entry.Save(ctx, user, entry.Delete(entries, ctx.Param("id"))); err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{Status: http.StatusNoContent}
}
