package planner

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/observability/metrics"
)

// PlanGenerator is what the HTTP handler needs from the planning
// service.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req models.TripRequest) (models.NormalizedPlan, error)
}

type Handler struct {
	service PlanGenerator
	logger  *zap.Logger
}

func NewHandler(service PlanGenerator, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// CreateTravelPlan handles POST /api/travel-plan.
func (h *Handler) CreateTravelPlan(c *gin.Context) {
	if m := metrics.Get(); m != nil {
		m.PlanRequestsTotal.Add(c.Request.Context(), 1)
	}

	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Rejected at the boundary, before any upstream call.
		h.logger.Debug("invalid travel plan request", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": models.ErrCountryMissing.Error(),
		})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "plan": plan})
}
