package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/pkg/memcache"
)

type stubPlannerService struct {
	lastReq request_models.PlanRequest
}

func (s *stubPlannerService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.TravelPlan {
	s.lastReq = req
	return response_models.TravelPlan{
		Summary: response_models.PlanSummary{Destination: req.Destinations[0]},
		DailyPlan: []response_models.DayPlan{
			{Day: 1, Location: req.Destinations[0]},
		},
		BudgetChart: response_models.BudgetChart{Labels: []string{"Day 1"}},
	}
}

func newPlannerRouter(handoff memcache.TripHandoffStore) (*gin.Engine, *stubPlannerService) {
	gin.SetMode(gin.TestMode)
	svc := &stubPlannerService{}
	controller := NewPlannerController(svc, handoff)

	r := gin.New()
	r.POST("/planner/plan", controller.GeneratePlan)
	r.GET("/planner/handoff/:sessionId", controller.ConsumeHandoff)
	return r, svc
}

func TestGeneratePlanEndpoint(t *testing.T) {
	r, svc := newPlannerRouter(memcache.NewTripHandoff())

	body := `{
		"start_city": "Mumbai",
		"destinations": ["Goa"],
		"num_days": 3,
		"total_budget": 15000,
		"interests": ["beach"],
		"start_date": "2024-07-01"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/planner/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mumbai", svc.lastReq.StartCity)

	var resp struct {
		Status string                      `json:"status"`
		Data   response_models.TravelPlan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Goa", resp.Data.Summary.Destination)
}

func TestGeneratePlanValidation(t *testing.T) {
	r, _ := newPlannerRouter(memcache.NewTripHandoff())

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing start city", `{"destinations": ["Goa"], "interests": ["beach"], "start_date": "2024-07-01"}`, "start_city"},
		{"missing destinations", `{"start_city": "Mumbai", "interests": ["beach"], "start_date": "2024-07-01"}`, "destination"},
		{"missing interests", `{"start_city": "Mumbai", "destinations": ["Goa"], "start_date": "2024-07-01"}`, "interest"},
		{"missing start date", `{"start_city": "Mumbai", "destinations": ["Goa"], "interests": ["beach"]}`, "start_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/planner/plan", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestConsumeHandoffEndpoint(t *testing.T) {
	handoff := memcache.NewTripHandoff()
	handoff.Set("session-1", request_models.TripParameters{
		Destination: "Goa",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-05",
		Budget:      20000,
		Travelers:   2,
	}, time.Minute)

	r, _ := newPlannerRouter(handoff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planner/handoff/session-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Trip request_models.TripParameters `json:"trip"`
			Plan request_models.PlanRequest    `json:"plan"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Goa", resp.Data.Trip.Destination)
	assert.Equal(t, "Goa", resp.Data.Plan.StartCity)
	assert.Equal(t, 4, resp.Data.Plan.NumDays)

	// Second read finds nothing: the handoff is single use.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planner/handoff/session-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
