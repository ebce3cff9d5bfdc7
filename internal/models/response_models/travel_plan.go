package response_models

// TravelPlan is the generated day-by-day itinerary artifact. Field names
// are part of the wire contract with plan consumers and must not change.
type TravelPlan struct {
	Summary     PlanSummary `json:"summary"`
	DailyPlan   []DayPlan   `json:"daily_plan"`
	BudgetChart BudgetChart `json:"budget_chart"`
}

type PlanSummary struct {
	Destination  string `json:"destination"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalBudget  int    `json:"total_budget"`
	EstimatedKms int    `json:"estimated_kms"`
	UserName     string `json:"userName,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Location   string     `json:"location"`
	Weather    DayWeather `json:"weather"`
	Spots      []Spot     `json:"spots"`
	Activities []string   `json:"activities"`
	Budget     DayBudget  `json:"budget"`
}

type DayWeather struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	// The remote model sometimes adds outfit/advice text; optional.
	Recommendation string `json:"recommendation,omitempty"`
}

type Spot struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DistanceKm  float64 `json:"distance_km"`
	// Optional fields the model does not reliably emit.
	EntryFee     int    `json:"entry_fee,omitempty"`
	TimeRequired string `json:"time_required,omitempty"`
}

type DayBudget struct {
	Stay      int `json:"stay"`
	Travel    int `json:"travel"`
	Food      int `json:"food"`
	EntryFees int `json:"entry_fees,omitempty"`
	Misc      int `json:"misc"`
}

// BudgetChart mirrors daily_plan: labels and every dataset array have one
// entry per day, always the same length.
type BudgetChart struct {
	Labels   []string      `json:"labels"`
	Datasets ChartDatasets `json:"datasets"`
}

type ChartDatasets struct {
	Stay   []int `json:"stay"`
	Travel []int `json:"travel"`
	Food   []int `json:"food"`
	Misc   []int `json:"misc"`
}
