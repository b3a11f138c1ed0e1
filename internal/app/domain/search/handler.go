package search

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
)

// Searcher is what the HTTP handler needs from the search client.
type Searcher interface {
	Search(ctx context.Context, query string) (models.SearchAnswer, error)
}

type searchRequest struct {
	Q string `json:"q" binding:"required"`
}

type Handler struct {
	searcher Searcher
	logger   *zap.Logger
}

func NewHandler(searcher Searcher, logger *zap.Logger) *Handler {
	return &Handler{searcher: searcher, logger: logger}
}

// Search handles POST /api/search.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid search request", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": models.ErrQueryMissing.Error(),
		})
		return
	}

	results, err := h.searcher.Search(c.Request.Context(), req.Q)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "results": results})
}
