package domain_models

type Itinerary struct {
	ID            string
	UserID        string
	Title         string
	StartDate     string
	EndDate       string
	Destinations  []ItineraryLeg
	TotalBudget   int
	CreatedAt     string
	IsAIGenerated bool
}

type ItineraryLeg struct {
	DestinationID string
	Days          int
	Activities    []string
}
