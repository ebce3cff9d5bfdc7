package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travo/internal/models/request_models"
)

func TestFallbackSynthesizerShape(t *testing.T) {
	f := NewFallbackSynthesizer(rand.New(rand.NewSource(1)))

	plan := f.Synthesize(request_models.PlanRequest{
		StartCity:    "Mumbai",
		Destinations: []string{"Goa", "Gokarna"},
		NumDays:      5,
		TotalBudget:  10000,
		StartDate:    "2024-07-01",
	})

	require.Len(t, plan.DailyPlan, 5)
	require.Len(t, plan.BudgetChart.Labels, 5)
	require.Len(t, plan.BudgetChart.Datasets.Stay, 5)
	require.Len(t, plan.BudgetChart.Datasets.Travel, 5)
	require.Len(t, plan.BudgetChart.Datasets.Food, 5)
	require.Len(t, plan.BudgetChart.Datasets.Misc, 5)

	assert.Equal(t, "Goa", plan.Summary.Destination)
	assert.Equal(t, "2024-07-01", plan.Summary.StartDate)
	assert.Equal(t, "2024-07-05", plan.Summary.EndDate)
	assert.Equal(t, 10000, plan.Summary.TotalBudget)
	assert.GreaterOrEqual(t, plan.Summary.EstimatedKms, 300)
	assert.Less(t, plan.Summary.EstimatedKms, 500)

	for i, day := range plan.DailyPlan {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, "Day 1", plan.BudgetChart.Labels[0])
		assert.Len(t, day.Spots, 2)
		assert.GreaterOrEqual(t, len(day.Activities), 2)
		assert.LessOrEqual(t, len(day.Activities), 3)

		// 10000 over 5 days: stay 800±100, travel 600±50, food 400±50,
		// misc fixed at the remainder.
		assert.GreaterOrEqual(t, day.Budget.Stay, 700)
		assert.Less(t, day.Budget.Stay, 900)
		assert.GreaterOrEqual(t, day.Budget.Travel, 550)
		assert.Less(t, day.Budget.Travel, 650)
		assert.GreaterOrEqual(t, day.Budget.Food, 350)
		assert.Less(t, day.Budget.Food, 450)
		assert.Equal(t, 200, day.Budget.Misc)

		// The chart mirrors the day budgets exactly.
		assert.Equal(t, day.Budget.Stay, plan.BudgetChart.Datasets.Stay[i])
		assert.Equal(t, day.Budget.Travel, plan.BudgetChart.Datasets.Travel[i])
		assert.Equal(t, day.Budget.Food, plan.BudgetChart.Datasets.Food[i])
		assert.Equal(t, day.Budget.Misc, plan.BudgetChart.Datasets.Misc[i])
	}
}

func TestFallbackSynthesizerRepeatsLastDestination(t *testing.T) {
	f := NewFallbackSynthesizer(rand.New(rand.NewSource(1)))

	plan := f.Synthesize(request_models.PlanRequest{
		Destinations: []string{"Jaipur", "Udaipur"},
		NumDays:      4,
		TotalBudget:  20000,
		StartDate:    "2024-11-01",
	})

	require.Len(t, plan.DailyPlan, 4)
	assert.Equal(t, "Jaipur", plan.DailyPlan[0].Location)
	assert.Equal(t, "Udaipur", plan.DailyPlan[1].Location)
	assert.Equal(t, "Udaipur", plan.DailyPlan[2].Location)
	assert.Equal(t, "Udaipur", plan.DailyPlan[3].Location)

	assert.Equal(t, "2024-11-01", plan.DailyPlan[0].Date)
	assert.Equal(t, "2024-11-04", plan.DailyPlan[3].Date)
}

func TestFallbackSynthesizerAppliesDefaults(t *testing.T) {
	f := NewFallbackSynthesizer(rand.New(rand.NewSource(7)))

	plan := f.Synthesize(request_models.PlanRequest{StartCity: "Delhi"})

	require.Len(t, plan.DailyPlan, 1)
	assert.Equal(t, "Delhi", plan.DailyPlan[0].Location)
	assert.Equal(t, 15000, plan.Summary.TotalBudget)
	assert.NotEmpty(t, plan.Summary.StartDate)
}

func TestFallbackSynthesizerActivitiesUnique(t *testing.T) {
	f := NewFallbackSynthesizer(rand.New(rand.NewSource(42)))

	plan := f.Synthesize(request_models.PlanRequest{
		Destinations: []string{"Hampi"},
		NumDays:      10,
		TotalBudget:  50000,
		StartDate:    "2024-01-01",
	})

	for _, day := range plan.DailyPlan {
		seen := make(map[string]bool)
		for _, a := range day.Activities {
			assert.False(t, seen[a], "duplicate activity %q on day %d", a, day.Day)
			seen[a] = true
		}
	}
}
