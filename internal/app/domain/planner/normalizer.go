package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
)

// NormalizePlan projects an extraction result into the fixed plan shape
// the client renders. Overview fields missing from the model output are
// derived from the original trip request; the three section maps default
// to empty and their values are coerced best-effort rather than
// validated, since the model is free to shape them loosely.
func NormalizePlan(res ExtractResult, req models.TripRequest, p models.DerivedTripParams) models.NormalizedPlan {
	obj := res.Value()

	plan := models.NormalizedPlan{
		Itinerary:       map[string]models.DayPlan{},
		PracticalInfo:   map[string]string{},
		BudgetBreakdown: map[string]string{},
	}

	overview, _ := obj["overview"].(map[string]any)
	plan.Overview = models.PlanOverview{
		Destination: firstNonEmpty(stringField(overview, "destination"), p.Destination),
		Duration:    firstNonEmpty(stringField(overview, "duration"), derivedDuration(p)),
		Theme:       firstNonEmpty(stringField(overview, "theme"), strings.Join(req.Activities, ", ")),
		Budget:      firstNonEmpty(stringField(overview, "budget"), BudgetText(req)),
	}

	if days, ok := obj["itinerary"].(map[string]any); ok {
		for label, v := range days {
			plan.Itinerary[label] = coerceDayPlan(v)
		}
	}
	if info, ok := obj["practicalInfo"].(map[string]any); ok {
		for category, v := range info {
			plan.PracticalInfo[category] = coerceText(v)
		}
	}
	if breakdown, ok := obj["budgetBreakdown"].(map[string]any); ok {
		for category, v := range breakdown {
			plan.BudgetBreakdown[category] = coerceText(v)
		}
	}

	if !res.Parsed() {
		plan.RawContent = res.Raw
	}

	return plan
}

func derivedDuration(p models.DerivedTripParams) string {
	if !p.DatesGiven {
		return ""
	}
	return fmt.Sprintf("%d days", p.Days)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

func coerceDayPlan(v any) models.DayPlan {
	switch day := v.(type) {
	case map[string]any:
		return models.DayPlan{
			Description:   coerceText(day["description"]),
			PlacesToVisit: coerceTextSlice(day["placesToVisit"]),
			Activities:    coerceTextSlice(day["activities"]),
		}
	default:
		return models.DayPlan{Description: coerceText(v)}
	}
}

func coerceTextSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text := coerceText(item); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// coerceText renders an arbitrary JSON value as display text.
func coerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
