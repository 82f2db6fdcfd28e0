package drafts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcgdev/journal-api/business/v1/draft"
	"github.com/hcgdev/journal-api/platform/web/handler"
	"github.com/hcgdev/journal-api/sys"
)

// Generate godoc
// @Summary Generate a draft
// @Description Expands a title and rough notes into full post content; the generated content is appended to the submitted context
// @Tags Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body draft.Request true "Title and current draft content"
// @Success 200 {object} draft.Draft
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 502 {object} handler.Error
// @Router /v1/drafts [post]
func Generate(ctx *gin.Context) handler.Result {
	var req draft.Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	generated, err := sys.R.Assistant.Generate(ctx, req.Title, req.Context)

	switch {
	case errors.Is(err, draft.ErrInFlight):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		sys.R.Log.Errorf("draft generation failed: %s", err)
		return handler.Result{
			Status: http.StatusBadGateway,
			Body:   handler.Error{Message: "draft generation failed, please try again"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body: draft.Draft{
				Title:   generated.Title,
				Content: draft.Append(req.Context, generated.Content),
			},
		}
	}
}
