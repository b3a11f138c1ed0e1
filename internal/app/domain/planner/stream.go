package planner

import (
	"context"
	"iter"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/observability/metrics"
	"github.com/bhavanagowda04/travel-planner-api/internal/pkg/config"
)

// CompletionStreamer yields the incremental text fragments of one chat
// completion in arrival order. Iteration stops after yielding a non-nil
// error; consumers must not keep ranging past it.
type CompletionStreamer interface {
	StreamChat(ctx context.Context, system, user string) iter.Seq2[string, error]
}

// GroqClient streams chat completions from the Groq OpenAI-compatible
// endpoint.
type GroqClient struct {
	client openai.Client
	cfg    config.GroqConfig
	logger *zap.Logger
}

func NewGroqClient(cfg config.GroqConfig, logger *zap.Logger) *GroqClient {
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
		),
		cfg:    cfg,
		logger: logger,
	}
}

func (g *GroqClient) StreamChat(ctx context.Context, system, user string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if g.cfg.APIKey == "" {
			// Fail before touching the transport.
			yield("", models.ErrLLMKeyMissing)
			return
		}

		stream := g.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(user),
			},
			Model:               openai.ChatModel(g.cfg.Model),
			Temperature:         openai.Float(g.cfg.Temperature),
			MaxCompletionTokens: openai.Int(g.cfg.MaxCompletionTokens),
		})
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			text := chunk.Choices[0].Delta.Content
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			yield("", err)
		}
	}
}

// CollectCompletion drives one streaming completion and concatenates
// every fragment into a single document. It blocks until the stream's
// terminal signal, the transport fails, or ctx is cancelled; partial
// output is discarded on failure.
func CollectCompletion(ctx context.Context, streamer CompletionStreamer, system, user string, logger *zap.Logger) (string, error) {
	var builder strings.Builder
	fragments := 0

	for text, err := range streamer.StreamChat(ctx, system, user) {
		if err != nil {
			return "", err
		}
		logger.Debug("completion fragment", zap.String("text", text))
		builder.WriteString(text)
		fragments++
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	if m := metrics.Get(); m != nil {
		m.CompletionFragmentsTotal.Add(ctx, int64(fragments))
	}
	logger.Debug("completion stream finished",
		zap.Int("fragments", fragments),
		zap.Int("bytes", builder.Len()))

	return builder.String(), nil
}
