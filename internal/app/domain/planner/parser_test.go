package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractPlan_JSONFenceInProse(t *testing.T) {
	raw := "Here is your travel plan:\n```json\n{\"overview\":{\"destination\":\"Goa\"}}\n```\nEnjoy your trip!"

	res := ExtractPlan(raw, zap.NewNop())

	require.True(t, res.Parsed())
	overview, ok := res.Object["overview"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Goa", overview["destination"])
}

func TestExtractPlan_UntaggedFence(t *testing.T) {
	raw := "Sure!\n```\n{\"overview\":{},\"itinerary\":{}}\n```"

	res := ExtractPlan(raw, zap.NewNop())

	require.True(t, res.Parsed())
	assert.Contains(t, res.Object, "itinerary")
}

func TestExtractPlan_BareJSON(t *testing.T) {
	raw := `{"overview":{"destination":"Kyoto"},"practicalInfo":{"visa":"not required"}}`

	res := ExtractPlan(raw, zap.NewNop())

	require.True(t, res.Parsed())
	assert.Contains(t, res.Object, "practicalInfo")
}

func TestExtractPlan_JSONFencePreferredOverPlainFence(t *testing.T) {
	raw := "```\nnot json at all\n```\nsome text\n```json\n{\"overview\":{}}\n```"

	res := ExtractPlan(raw, zap.NewNop())

	require.True(t, res.Parsed())
	assert.Contains(t, res.Object, "overview")
}

func TestExtractPlan_NoValidJSONFallsBack(t *testing.T) {
	raw := "Sorry, I can only answer travel questions."

	res := ExtractPlan(raw, zap.NewNop())

	assert.False(t, res.Parsed())
	assert.Equal(t, raw, res.Raw)
	assert.Equal(t, map[string]any{
		"overview":   "Generated travel plan",
		"rawContent": raw,
	}, res.Value())
}

func TestExtractPlan_TruncatedJSONFallsBack(t *testing.T) {
	raw := "```json\n{\"overview\":{\"destination\":\"Goa\"\n```"

	res := ExtractPlan(raw, zap.NewNop())

	assert.False(t, res.Parsed())
	assert.Equal(t, raw, res.Raw)
}

func TestExtractPlan_JSONArrayFallsBack(t *testing.T) {
	// A top-level array is not a plan object.
	res := ExtractPlan(`["day 1","day 2"]`, zap.NewNop())

	assert.False(t, res.Parsed())
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around braces", `The plan: {"a":1} done.`, `{"a":1}`},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
		{"no braces at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.in))
		})
	}
}
