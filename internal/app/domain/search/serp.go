package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/observability/metrics"
	"github.com/bhavanagowda04/travel-planner-api/internal/pkg/config"
)

const (
	maxSources     = 3
	requestTimeout = 15 * time.Second

	noAnswerText = "I couldn't find a specific answer to your question."
)

// serpResponse is the subset of the SERP API payload we read.
type serpResponse struct {
	AnswerBox *struct {
		Answer  string `json:"answer"`
		Snippet string `json:"snippet"`
	} `json:"answer_box"`
	KnowledgeGraph *struct {
		Description string `json:"description"`
	} `json:"knowledge_graph"`
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// SerpClient queries the SERP API and shapes the payload into an
// answer-with-sources record.
type SerpClient struct {
	cfg    config.SerpConfig
	http   *http.Client
	logger *zap.Logger
}

func NewSerpClient(cfg config.SerpConfig, logger *zap.Logger) *SerpClient {
	return &SerpClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

// Search runs one query. A missing API key fails fast; transport and
// decode failures are logged with full detail and surface as the fixed
// user-facing search error.
func (c *SerpClient) Search(ctx context.Context, query string) (models.SearchAnswer, error) {
	if c.cfg.APIKey == "" {
		return models.SearchAnswer{}, models.ErrSearchKeyMissing
	}

	if m := metrics.Get(); m != nil {
		m.SearchRequestsTotal.Add(ctx, 1)
	}

	payload, err := c.fetch(ctx, query)
	if err != nil {
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(ctx, 1)
		}
		c.logger.Error("SERP API error", zap.Error(err), zap.String("query", query))
		return models.SearchAnswer{}, models.ErrSearchFailed
	}

	return formatAnswer(payload), nil
}

func (c *SerpClient) fetch(ctx context.Context, query string) (*serpResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.cfg.APIKey)
	params.Set("engine", c.cfg.Engine)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serp api returned status %d", resp.StatusCode)
	}

	var payload serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode serp response: %w", err)
	}
	return &payload, nil
}

// formatAnswer applies the answer precedence chain and trims sources to
// the first three organic results, preserving upstream order.
func formatAnswer(payload *serpResponse) models.SearchAnswer {
	answer := noAnswerText
	switch {
	case payload.AnswerBox != nil && payload.AnswerBox.Answer != "":
		answer = payload.AnswerBox.Answer
	case payload.AnswerBox != nil && payload.AnswerBox.Snippet != "":
		answer = payload.AnswerBox.Snippet
	case payload.KnowledgeGraph != nil && payload.KnowledgeGraph.Description != "":
		answer = payload.KnowledgeGraph.Description
	}

	sources := lo.Map(
		lo.Slice(payload.OrganicResults, 0, maxSources),
		func(r organicResult, _ int) models.SearchSource {
			return models.SearchSource{Title: r.Title, Link: r.Link, Snippet: r.Snippet}
		})

	return models.SearchAnswer{Answer: answer, Sources: sources}
}
