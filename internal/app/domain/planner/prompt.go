package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
)

const (
	systemPrompt = "You are a helpful travel planning assistant."

	defaultDays       = 3
	defaultPreference = "sightseeing"
	defaultTravelType = "solo"
	flexibleBudget    = "flexible"
)

// DeriveTripParams projects a TripRequest into the prompt-ready
// parameters. Every optional field degrades to a default; there are no
// error conditions.
func DeriveTripParams(req models.TripRequest) models.DerivedTripParams {
	p := models.DerivedTripParams{
		Days:            defaultDays,
		Destination:     req.Country,
		BudgetText:      flexibleBudget,
		PreferencesText: defaultPreference,
		TravelTypeText:  defaultTravelType,
	}

	if req.FromDate != nil && req.ToDate != nil && !req.FromDate.IsZero() && !req.ToDate.IsZero() {
		p.DatesGiven = true
		diff := req.ToDate.Sub(req.FromDate.Time)
		if diff < 0 {
			diff = -diff
		}
		// Zero-length ranges still count as one day.
		p.Days = int(math.Ceil(diff.Hours() / 24))
		if p.Days < 1 {
			p.Days = 1
		}
	}

	if req.State != "" {
		p.Destination = req.Country + ", " + req.State
	}

	if text := BudgetText(req); text != "" {
		p.BudgetText = text
	}

	if len(req.Activities) > 0 {
		p.PreferencesText = strings.Join(req.Activities, ", ")
	}

	if req.TravelType != "" {
		p.TravelTypeText = req.TravelType
	}

	return p
}

// BudgetText renders "{symbol}{amount}" when both a positive budget and
// a currency were supplied, and "" otherwise.
func BudgetText(req models.TripRequest) string {
	if req.Budget <= 0 || req.Currency == nil {
		return ""
	}
	return req.Currency.Symbol + strconv.FormatFloat(req.Budget, 'f', -1, 64)
}

// BuildPrompt assembles the user-role instruction sent to the model.
func BuildPrompt(p models.DerivedTripParams) string {
	return fmt.Sprintf(
		"Suggest a %d-day %s trip to %s under a budget of %s.\n"+
			"Preferences: %s.\n"+
			"Return the response in a structured JSON format with overview, itinerary (day-wise), practicalInfo, and budgetBreakdown.",
		p.Days, p.TravelTypeText, p.Destination, p.BudgetText, p.PreferencesText,
	)
}
