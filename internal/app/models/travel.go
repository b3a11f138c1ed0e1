package models

import (
	"fmt"
	"strings"
	"time"
)

// Currency is the {code, symbol} pair sent by the planner form.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// FlexDate accepts both full RFC 3339 timestamps and bare YYYY-MM-DD
// strings, which is what the frontend date picker produces depending on
// how the form state was serialized.
type FlexDate struct {
	time.Time
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// TripRequest is the request body of POST /api/travel-plan.
// Only the destination country is required; everything else degrades to
// a default during prompt derivation.
type TripRequest struct {
	Country    string    `json:"country" binding:"required"`
	State      string    `json:"state"`
	FromDate   *FlexDate `json:"fromDate"`
	ToDate     *FlexDate `json:"toDate"`
	Budget     float64   `json:"budget" binding:"omitempty,gte=0"`
	Currency   *Currency `json:"currency"`
	Activities []string  `json:"activities"`
	TravelType string    `json:"travelType"`
}

// DerivedTripParams is the prompt-ready projection of a TripRequest.
// It has no identity of its own; it is recomputed per request.
type DerivedTripParams struct {
	Days            int
	Destination     string
	BudgetText      string
	PreferencesText string
	TravelTypeText  string
	DatesGiven      bool
}

// PlanOverview is the fixed overview block of a normalized plan. Fields
// missing from the model output are filled from the trip request.
type PlanOverview struct {
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Theme       string `json:"theme"`
	Budget      string `json:"budget"`
}

// DayPlan is one itinerary day.
type DayPlan struct {
	Description   string   `json:"description"`
	PlacesToVisit []string `json:"placesToVisit"`
	Activities    []string `json:"activities"`
}

// NormalizedPlan is the fixed-shape itinerary record returned to the
// client, independent of whatever shape the model actually produced.
// RawContent is only set when the model output could not be parsed as
// JSON anywhere; the client renders it as-is in that case.
type NormalizedPlan struct {
	Overview        PlanOverview       `json:"overview"`
	Itinerary       map[string]DayPlan `json:"itinerary"`
	PracticalInfo   map[string]string  `json:"practicalInfo"`
	BudgetBreakdown map[string]string  `json:"budgetBreakdown"`
	RawContent      string             `json:"rawContent,omitempty"`
}
