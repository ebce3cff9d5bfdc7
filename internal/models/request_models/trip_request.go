package request_models

import (
	"strings"
	"time"
)

// TripParameters is the slot-filled record captured by the guided chat
// flow, one field per question. Once every slot has been asked it is
// immutable input to plan generation.
type TripParameters struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Budget      int      `json:"budget"`
	Activities  []string `json:"activities"`
	Travelers   int      `json:"travelers"`
	TravelMode  string   `json:"travelMode"`
}

// PlanRequest is the canonical shape consumed by the plan generator; the
// standalone planner form posts it directly.
type PlanRequest struct {
	StartCity    string   `json:"start_city"`
	Destinations []string `json:"destinations"`
	NumDays      int      `json:"num_days"`
	TotalBudget  int      `json:"total_budget"`
	Interests    []string `json:"interests"`
	GroupType    string   `json:"group_type"`
	StartDate    string   `json:"start_date"`
	UserName     string   `json:"user_name,omitempty"`
}

// PlanRequestFromTrip is the single adapter between the two trip shapes.
// Both the chat handoff and the planner form must go through it so the two
// entry points produce identical requests. The first listed destination
// doubles as the start city, and travelers > 1 maps to a "friends" group.
func PlanRequestFromTrip(t TripParameters) PlanRequest {
	destinations := splitAndTrim(t.Destination)

	startCity := ""
	if len(destinations) > 0 {
		startCity = destinations[0]
	}

	numDays := 3
	if t.EndDate != "" {
		start, errStart := time.Parse("2006-01-02", t.StartDate)
		end, errEnd := time.Parse("2006-01-02", t.EndDate)
		if errStart == nil && errEnd == nil {
			numDays = int(end.Sub(start).Hours() / 24)
			if numDays < 1 {
				numDays = 1
			}
		}
	}

	budget := t.Budget
	if budget == 0 {
		budget = 15000
	}

	groupType := "solo"
	if t.Travelers > 1 {
		groupType = "friends"
	}

	return PlanRequest{
		StartCity:    startCity,
		Destinations: destinations,
		NumDays:      numDays,
		TotalBudget:  budget,
		Interests:    t.Activities,
		GroupType:    groupType,
		StartDate:    t.StartDate,
	}
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
