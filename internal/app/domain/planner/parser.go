package planner

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FallbackOverview is the overview placeholder used when no JSON object
// could be parsed out of the model output.
const FallbackOverview = "Generated travel plan"

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n```")
	anyFenceRe  = regexp.MustCompile("(?s)```(.*?)```")
)

// ExtractResult is the outcome of pulling a JSON object out of raw
// model output. Exactly one arm applies: Object is non-nil when a JSON
// object was parsed; Raw always holds the full aggregated text.
type ExtractResult struct {
	Object map[string]any
	Raw    string
}

func (r ExtractResult) Parsed() bool { return r.Object != nil }

// Value returns the plan object the rest of the pipeline consumes: the
// parsed object, or the fixed fallback record wrapping the raw text.
func (r ExtractResult) Value() map[string]any {
	if r.Object != nil {
		return r.Object
	}
	return map[string]any{
		"overview":   FallbackOverview,
		"rawContent": r.Raw,
	}
}

// ExtractPlan locates a JSON object embedded in raw model output and
// parses it. Selection order: a fence tagged json, then any fence, then
// the whole text. Parse failure never propagates; the caller always
// gets a usable result, with the failure logged for diagnostics.
func ExtractPlan(raw string, logger *zap.Logger) ExtractResult {
	candidate := raw
	if m := jsonFenceRe.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else if m := anyFenceRe.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleanJSONResponse(candidate)), &obj); err != nil {
		logger.Warn("failed to parse JSON from completion",
			zap.Error(err),
			zap.Int("raw_len", len(raw)))
		return ExtractResult{Raw: raw}
	}
	return ExtractResult{Object: obj, Raw: raw}
}

// cleanJSONResponse scrubs markdown leftovers around and inside a JSON
// candidate: fence markers, stray backticks, and any prose before the
// first or after the matching last brace.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}

	braceCount := 0
	lastValidBrace := -1
	for i := firstBrace; i < len(response); i++ {
		switch response[i] {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				lastValidBrace = i
			}
		}
		if lastValidBrace != -1 {
			break
		}
	}

	if lastValidBrace == -1 {
		lastBrace := strings.LastIndex(response, "}")
		if lastBrace == -1 || lastBrace <= firstBrace {
			return response
		}
		lastValidBrace = lastBrace
	}

	jsonPortion := response[firstBrace : lastValidBrace+1]
	jsonPortion = strings.ReplaceAll(jsonPortion, "`", "")

	return strings.TrimSpace(jsonPortion)
}
