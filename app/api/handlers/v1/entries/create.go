package entries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/entry"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/platform/web/mid"
)

// Create godoc
// @Summary Create a journal entry
// @Description Adds an entry to the current user's journal
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body entry.NewEntry true "New entry"
// @Success 201 {object} entry.Entry
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/entries [post]
func Create(ctx *gin.Context) handler.Result {
	user := mid.User(ctx)

	var data entry.NewEntry
	if err := ctx.ShouldBindJSON(&data); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	entries, err := entry.Load(ctx, user)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	entries, created, err := entry.Create(entries, data)

	switch {
	case errors.Is(err, entry.ErrEmptyTitle), errors.Is(err, entry.ErrEmptyContent), errors.Is(err, entry.ErrBadDate):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	if err := entry.Save(ctx, user, entries); err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
