package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/domain/planner"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/domain/search"
	"github.com/bhavanagowda04/travel-planner-api/internal/pkg/config"
)

// Setup wires upstream clients, services and handlers, and registers
// all routes on the router.
func Setup(r *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	groq := planner.NewGroqClient(cfg.Groq, logger)
	plannerService := planner.NewService(groq, logger)
	plannerHandler := planner.NewHandler(plannerService, logger)

	serp := search.NewSerpClient(cfg.Serp, logger)
	searchHandler := search.NewHandler(serp, logger)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Travel backend up")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/travel-plan", plannerHandler.CreateTravelPlan)
		api.POST("/search", searchHandler.Search)
	}
}
