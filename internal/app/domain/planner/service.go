package planner

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/observability/metrics"
)

// completionTimeout bounds the upstream call. The context is derived
// from the inbound request, so a dropped client also cancels the
// in-flight completion.
const completionTimeout = 60 * time.Second

type Service struct {
	llm    CompletionStreamer
	logger *zap.Logger
}

func NewService(llm CompletionStreamer, logger *zap.Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// GeneratePlan runs the full pipeline: derive prompt parameters, drive
// the streaming completion, extract the embedded JSON and project it
// into the fixed plan shape. JSON extraction failure is recovered into
// a fallback plan; only configuration and transport failures error.
func (s *Service) GeneratePlan(ctx context.Context, req models.TripRequest) (models.NormalizedPlan, error) {
	params := DeriveTripParams(req)
	prompt := BuildPrompt(params)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	start := time.Now()
	raw, err := CollectCompletion(ctx, s.llm, systemPrompt, prompt, s.logger)
	if err != nil {
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(ctx, 1)
		}
		if errors.Is(err, models.ErrLLMKeyMissing) {
			return models.NormalizedPlan{}, err
		}
		// Transport detail stays server-side.
		s.logger.Error("completion stream failed",
			zap.Error(err),
			zap.String("destination", params.Destination))
		return models.NormalizedPlan{}, models.ErrPlanFailed
	}

	if m := metrics.Get(); m != nil {
		m.PlanGenerationDuration.Record(ctx, time.Since(start).Seconds())
	}

	result := ExtractPlan(raw, s.logger)
	return NormalizePlan(result, req, params), nil
}
