package request_models

// ItineraryPrompt drives the AI itinerary builder on the itineraries page.
// Destination IDs refer to catalog entries, unlike the free-text
// destinations of PlanRequest.
type ItineraryPrompt struct {
	DestinationIDs []string `json:"destination_ids"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Budget         int      `json:"budget"`
	Interests      []string `json:"interests"`
	TravelStyle    string   `json:"travel_style"`  // relaxed | moderate | active
	Accommodation  string   `json:"accommodation"` // budget | mid-range | luxury
}

type CreateItineraryRequest struct {
	Title        string                 `json:"title"`
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	Destinations []ItineraryDestination `json:"destinations"`
	TotalBudget  int                    `json:"total_budget"`
}

type ItineraryDestination struct {
	DestinationID string   `json:"destination_id"`
	Days          int      `json:"days"`
	Activities    []string `json:"activities"`
}
