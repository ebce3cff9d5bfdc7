package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/pkg/utils"
)

var weatherConditions = []string{"Sunny", "Partly cloudy", "Cloudy", "Light rain", "Clear"}

var activityVocabulary = []string{
	"Sightseeing", "Photography", "Shopping", "Local cuisine",
	"Cultural show", "Hiking", "Relaxation", "Temple visit",
}

// FallbackSynthesizer builds a schema-valid plan offline when the remote
// model is unavailable or returns garbage. The shape is deterministic; the
// filler values (weather, distances, kms) are randomized cosmetic content.
// The randomness source is injectable so tests can seed it.
type FallbackSynthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewFallbackSynthesizer(rng *rand.Rand) *FallbackSynthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FallbackSynthesizer{rng: rng}
}

func (f *FallbackSynthesizer) Synthesize(req request_models.PlanRequest) response_models.TravelPlan {
	f.mu.Lock()
	defer f.mu.Unlock()

	req = normalizePlanRequest(req)
	start, _ := utils.ParseDate(req.StartDate)

	// Daily envelope split 40/30/20, misc takes the remainder and never
	// jitters, so the day totals stay near totalBudget/numDays.
	dailyBudget := req.TotalBudget / req.NumDays
	stayBudget := dailyBudget * 40 / 100
	travelBudget := dailyBudget * 30 / 100
	foodBudget := dailyBudget * 20 / 100
	miscBudget := dailyBudget - stayBudget - travelBudget - foodBudget

	dailyPlans := make([]response_models.DayPlan, 0, req.NumDays)
	chart := response_models.BudgetChart{
		Labels: make([]string, 0, req.NumDays),
		Datasets: response_models.ChartDatasets{
			Stay:   make([]int, 0, req.NumDays),
			Travel: make([]int, 0, req.NumDays),
			Food:   make([]int, 0, req.NumDays),
			Misc:   make([]int, 0, req.NumDays),
		},
	}

	for i := 0; i < req.NumDays; i++ {
		// Once the listed destinations run out, stay at the last one.
		destinationIndex := i
		if destinationIndex > len(req.Destinations)-1 {
			destinationIndex = len(req.Destinations) - 1
		}
		location := req.Destinations[destinationIndex]

		dayStay := stayBudget + f.rng.Intn(200) - 100
		dayTravel := travelBudget + f.rng.Intn(100) - 50
		dayFood := foodBudget + f.rng.Intn(100) - 50

		dailyPlans = append(dailyPlans, response_models.DayPlan{
			Day:      i + 1,
			Date:     utils.FormatDate(start.AddDate(0, 0, i)),
			Location: location,
			Weather: response_models.DayWeather{
				Temperature: fmt.Sprintf("%d°C", f.rng.Intn(10)+22),
				Condition:   weatherConditions[f.rng.Intn(len(weatherConditions))],
			},
			Spots: []response_models.Spot{
				{
					Name:        location + " Main Attraction",
					Description: "A beautiful and popular tourist destination.",
					DistanceKm:  float64(f.rng.Intn(5) + 1),
				},
				{
					Name:        location + " Museum",
					Description: "Historical artifacts and cultural exhibitions.",
					DistanceKm:  float64(f.rng.Intn(3) + 2),
				},
			},
			Activities: f.pickActivities(),
			Budget: response_models.DayBudget{
				Stay:   dayStay,
				Travel: dayTravel,
				Food:   dayFood,
				Misc:   miscBudget,
			},
		})

		chart.Labels = append(chart.Labels, fmt.Sprintf("Day %d", i+1))
		chart.Datasets.Stay = append(chart.Datasets.Stay, dayStay)
		chart.Datasets.Travel = append(chart.Datasets.Travel, dayTravel)
		chart.Datasets.Food = append(chart.Datasets.Food, dayFood)
		chart.Datasets.Misc = append(chart.Datasets.Misc, miscBudget)
	}

	return response_models.TravelPlan{
		Summary: response_models.PlanSummary{
			Destination:  req.Destinations[0],
			StartDate:    req.StartDate,
			EndDate:      utils.FormatDate(start.AddDate(0, 0, req.NumDays-1)),
			TotalBudget:  req.TotalBudget,
			EstimatedKms: f.rng.Intn(200) + 300,
			UserName:     req.UserName,
		},
		DailyPlan:   dailyPlans,
		BudgetChart: chart,
	}
}

// pickActivities draws 2-3 entries from the vocabulary without replacement.
func (f *FallbackSynthesizer) pickActivities() []string {
	options := make([]string, len(activityVocabulary))
	copy(options, activityVocabulary)

	count := f.rng.Intn(2) + 2
	activities := make([]string, 0, count)
	for i := 0; i < count; i++ {
		idx := f.rng.Intn(len(options))
		activities = append(activities, options[idx])
		options = append(options[:idx], options[idx+1:]...)
	}
	return activities
}
