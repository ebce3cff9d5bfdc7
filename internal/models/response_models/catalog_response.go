package response_models

type DestinationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	State       string   `json:"state"`
	Region      string   `json:"region"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Rating      float64  `json:"rating"`
	Price       int      `json:"price"`
	Trending    bool     `json:"trending,omitempty"`
}

type ItineraryResponse struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	Title         string                 `json:"title"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	Destinations  []ItineraryLegResponse `json:"destinations"`
	TotalBudget   int                    `json:"total_budget"`
	CreatedAt     string                 `json:"created_at"`
	IsAIGenerated bool                   `json:"is_ai_generated"`
}

type ItineraryLegResponse struct {
	DestinationID string   `json:"destination_id"`
	Days          int      `json:"days"`
	Activities    []string `json:"activities"`
}
