package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appmiddleware "github.com/bhavanagowda04/travel-planner-api/internal/app/middleware"
	"github.com/bhavanagowda04/travel-planner-api/internal/app/models"
)

type stubGenerator struct {
	plan models.NormalizedPlan
	err  error

	got models.TripRequest
}

func (s *stubGenerator) GeneratePlan(_ context.Context, req models.TripRequest) (models.NormalizedPlan, error) {
	s.got = req
	return s.plan, s.err
}

func setupPlannerRouter(gen PlanGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(appmiddleware.ErrorHandler(zap.NewNop()))
	r.POST("/api/travel-plan", NewHandler(gen, zap.NewNop()).CreateTravelPlan)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTravelPlan_MissingCountry(t *testing.T) {
	r := setupPlannerRouter(&stubGenerator{})

	w := postJSON(t, r, "/api/travel-plan", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Destination is required", body["error"])
}

func TestCreateTravelPlan_Success(t *testing.T) {
	gen := &stubGenerator{plan: models.NormalizedPlan{
		Overview:        models.PlanOverview{Destination: "Japan, Tokyo"},
		Itinerary:       map[string]models.DayPlan{},
		PracticalInfo:   map[string]string{},
		BudgetBreakdown: map[string]string{},
	}}
	r := setupPlannerRouter(gen)

	w := postJSON(t, r, "/api/travel-plan", `{
		"country": "Japan",
		"state": "Tokyo",
		"fromDate": "2026-03-01",
		"toDate": "2026-03-05",
		"activities": ["food"]
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool                  `json:"ok"`
		Plan models.NormalizedPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "Japan, Tokyo", body.Plan.Overview.Destination)

	assert.Equal(t, "Japan", gen.got.Country)
	assert.Equal(t, []string{"food"}, gen.got.Activities)
	require.NotNil(t, gen.got.FromDate)
	assert.Equal(t, 1, gen.got.FromDate.Day())
}

func TestCreateTravelPlan_UpstreamFailure(t *testing.T) {
	r := setupPlannerRouter(&stubGenerator{err: models.ErrPlanFailed})

	w := postJSON(t, r, "/api/travel-plan", `{"country":"Japan"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Failed to generate travel plan", body["error"])
}

func TestCreateTravelPlan_StatusErrorMapsCode(t *testing.T) {
	r := setupPlannerRouter(&stubGenerator{
		err: models.WithStatus(http.StatusBadGateway, models.ErrPlanFailed),
	})

	w := postJSON(t, r, "/api/travel-plan", `{"country":"Japan"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
