package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/pkg/utils"
)

const plannerSystemPrompt = `You are a smart AI travel planner named TravoBot that helps users generate a full trip itinerary based on their preferences and budget. Your job is to generate a well-structured, day-by-day travel plan in JSON format, which includes:

1. A day-wise breakdown of the itinerary, including:
   - Date
   - City/Location
   - List of 2-4 famous spots (with short descriptions)
   - Estimated distance between places (approx km)
   - Recommended activities
   - Estimated time for each spot

2. Include the current weather (temperature, condition) for each location per day using user-input date.

3. For each day, allocate a daily budget breakdown:
   - Stay (INR ₹)
   - Travel (INR ₹)
   - Food (INR ₹)
   - Miscellaneous (INR ₹)

4. At the end of the plan:
   - Show Total Budget
   - Show Chart breakdown of budget per day
   - Summarize trip (e.g., number of spots visited, kilometers covered)

5. Use only known tourist places from India.

6. Structure your entire response in a valid JSON format.`

type PlannerServiceInterface interface {
	// GeneratePlan always produces a structurally valid TravelPlan. When
	// the remote model fails or returns something unusable the plan is
	// synthesized locally instead; callers cannot tell the difference and
	// never see an error.
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.TravelPlan
}

type PlannerService struct {
	textgen  utils.TextGenerationClient
	fallback *FallbackSynthesizer
}

func NewPlannerService(textgen utils.TextGenerationClient, fallback *FallbackSynthesizer) PlannerServiceInterface {
	return &PlannerService{
		textgen:  textgen,
		fallback: fallback,
	}
}

func (p *PlannerService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.TravelPlan {
	req = normalizePlanRequest(req)

	rawJSON, err := p.textgen.GenerateText(ctx, plannerSystemPrompt, buildPlanUserPrompt(req), utils.GenerationOptions{
		Temperature: 0.7,
		MaxTokens:   2000,
		JSONOutput:  true,
	})
	if err != nil {
		log.Printf("Plan generation failed, synthesizing locally: %v", err)
		return p.fallback.Synthesize(req)
	}

	plan, ok := parsePlanResponse(rawJSON)
	if !ok {
		log.Printf("Plan response was not usable JSON, synthesizing locally")
		return p.fallback.Synthesize(req)
	}

	if plan.Summary.UserName == "" {
		plan.Summary.UserName = req.UserName
	}
	return plan
}

// normalizePlanRequest fills the gaps the guided flow is allowed to leave:
// a missing start date becomes today, the end date is derived from the day
// count, and an empty destination list degrades to the start city.
func normalizePlanRequest(req request_models.PlanRequest) request_models.PlanRequest {
	if req.NumDays < 1 {
		req.NumDays = 1
	}
	if req.TotalBudget <= 0 {
		req.TotalBudget = 15000
	}
	if len(req.Destinations) == 0 {
		if req.StartCity != "" {
			req.Destinations = []string{req.StartCity}
		} else {
			req.Destinations = []string{"India"}
		}
	}
	if _, ok := utils.ParseDate(req.StartDate); !ok {
		req.StartDate = utils.FormatDate(utils.NowIST())
	}
	return req
}

func buildPlanUserPrompt(req request_models.PlanRequest) string {
	start, _ := utils.ParseDate(req.StartDate)
	endDate := utils.FormatDate(start.AddDate(0, 0, req.NumDays-1))

	return fmt.Sprintf(`Generate a detailed %d-day travel itinerary for a trip from %s to %s with a total budget of ₹%d.

Trip details:
- Start date: %s
- End date: %s
- Interests: %s
- Group type: %s

The response must be in the following JSON schema (and must be valid parseable JSON):

{
  "summary": {
    "destination": "Main Destination",
    "start_date": "%s",
    "end_date": "%s",
    "total_budget": %d,
    "estimated_kms": 450
  },
  "daily_plan": [
    {
      "day": 1,
      "date": "%s",
      "location": "Location Name",
      "weather": {
        "temperature": "22°C",
        "condition": "Cloudy"
      },
      "spots": [
        {
          "name": "Spot Name",
          "description": "Brief description",
          "distance_km": 2
        }
      ],
      "activities": ["Activity 1", "Activity 2"],
      "budget": {
        "stay": 2000,
        "travel": 500,
        "food": 700,
        "misc": 300
      }
    }
  ],
  "budget_chart": {
    "labels": ["Day 1", "Day 2", "Day 3"],
    "datasets": {
      "stay": [2000, 1800, 1700],
      "travel": [500, 600, 400],
      "food": [700, 800, 650],
      "misc": [300, 200, 250]
    }
  }
}`,
		req.NumDays, req.StartCity, strings.Join(req.Destinations, ", "), req.TotalBudget,
		req.StartDate, endDate, strings.Join(req.Interests, ", "), req.GroupType,
		req.StartDate, endDate, req.TotalBudget, req.StartDate)
}

// parsePlanResponse tries a direct decode first, then the first top-level
// JSON object embedded in the reply. Anything beyond the top-level keys is
// taken as-is; consumers handle missing optional fields.
func parsePlanResponse(rawJSON string) (response_models.TravelPlan, bool) {
	var plan response_models.TravelPlan
	if err := json.Unmarshal([]byte(rawJSON), &plan); err != nil {
		extracted := utils.ExtractJSONObject(rawJSON)
		if extracted == "" {
			return response_models.TravelPlan{}, false
		}
		if err := json.Unmarshal([]byte(extracted), &plan); err != nil {
			return response_models.TravelPlan{}, false
		}
	}

	if len(plan.DailyPlan) == 0 || len(plan.BudgetChart.Labels) == 0 {
		return response_models.TravelPlan{}, false
	}
	return plan, true
}
