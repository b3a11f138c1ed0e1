package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PlanRequestsTotal        metric.Int64Counter
	PlanGenerationDuration   metric.Float64Histogram
	SearchRequestsTotal      metric.Int64Counter
	CompletionFragmentsTotal metric.Int64Counter
	UpstreamErrorsTotal      metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, from
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("travel-planner-api")
		var err error
		m := &AppMetrics{}

		m.PlanRequestsTotal, err = meter.Int64Counter(
			"plan_requests_total",
			metric.WithDescription("Total number of travel plan requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_requests_total: %v", err)
		}

		m.PlanGenerationDuration, err = meter.Float64Histogram(
			"plan_generation_duration_seconds",
			metric.WithDescription("Duration of completed LLM plan generations in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_generation_duration_seconds: %v", err)
		}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"search_requests_total",
			metric.WithDescription("Total number of search requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_requests_total: %v", err)
		}

		m.CompletionFragmentsTotal, err = meter.Int64Counter(
			"completion_fragments_total",
			metric.WithDescription("Total number of streamed completion fragments consumed"),
			metric.WithUnit("{fragment}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create completion_fragments_total: %v", err)
		}

		m.UpstreamErrorsTotal, err = meter.Int64Counter(
			"upstream_errors_total",
			metric.WithDescription("Total number of failed upstream API calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized instruments, or nil when InitAppMetrics
// has not run (callers treat metrics as optional).
func Get() *AppMetrics {
	return appMetrics
}
