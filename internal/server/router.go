package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appmiddleware "github.com/bhavanagowda04/travel-planner-api/internal/app/middleware"
	"github.com/bhavanagowda04/travel-planner-api/internal/pkg/config"
	"github.com/bhavanagowda04/travel-planner-api/internal/routes"
)

const serviceName = "travel-planner-api"

// SetupRouter configures and returns the Gin router with all middleware
// and routes.
func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(appmiddleware.OTELGinMiddleware(serviceName))
	r.Use(appmiddleware.RequestIDMiddleware())
	r.Use(appmiddleware.CORSMiddleware(cfg.FrontendURL))
	r.Use(appmiddleware.SecurityMiddleware())
	r.Use(appmiddleware.ErrorHandler(logger))

	routes.Setup(r, cfg, logger)

	return r
}

// zapContextFunc attaches request id and OTEL trace/span ids to each
// access log line.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
