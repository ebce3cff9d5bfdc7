package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travo/internal/models/request_models"
	"travo/internal/repositories"
	"travo/pkg/utils"
)

func newItineraryServiceForTest(stub *stubTextGen) ItineraryServiceInterface {
	return NewItineraryService(
		repositories.NewItineraryRepository(),
		repositories.NewDestinationRepository(),
		stub,
	)
}

func TestGenerateItineraryDistributesDays(t *testing.T) {
	// Model failure forces the heuristic path so the output is stable.
	svc := newItineraryServiceForTest(&stubTextGen{err: errors.New("down")})

	it, err := svc.GenerateItinerary(context.Background(), "user-1", request_models.ItineraryPrompt{
		DestinationIDs: []string{"manali", "shimla", "jaipur"},
		StartDate:      "2024-12-01",
		EndDate:        "2024-12-07",
		Budget:         30000,
		Interests:      []string{"culture"},
		TravelStyle:    "relaxed",
	})
	require.NoError(t, err)

	// 7 days over 3 legs: 3, 2, 2.
	require.Len(t, it.Destinations, 3)
	assert.Equal(t, 3, it.Destinations[0].Days)
	assert.Equal(t, 2, it.Destinations[1].Days)
	assert.Equal(t, 2, it.Destinations[2].Days)
	assert.True(t, it.IsAIGenerated)
	assert.Equal(t, "user-1", it.UserID)
}

func TestGenerateItineraryTitleHeuristics(t *testing.T) {
	cases := []struct {
		name           string
		destinationIDs []string
		travelStyle    string
		title          string
	}{
		{"single region", []string{"manali", "jaipur"}, "", "North India Adventure"},
		{"single state", []string{"manali", "shimla"}, "", "North India Adventure"},
		{"mixed regions", []string{"goa", "manali", "ooty"}, "", "Indian Discovery Tour"},
		{"relaxed prefix", []string{"goa", "ooty"}, "relaxed", "Relaxing Indian Discovery Tour"},
		{"active prefix", []string{"goa", "ooty"}, "active", "Active Indian Discovery Tour"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newItineraryServiceForTest(&stubTextGen{err: errors.New("down")})

			it, err := svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
				DestinationIDs: tc.destinationIDs,
				StartDate:      "2024-12-01",
				EndDate:        "2024-12-06",
				TravelStyle:    tc.travelStyle,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.title, it.Title)
		})
	}
}

func TestGenerateItineraryMergesModelActivities(t *testing.T) {
	stub := &stubTextGen{response: `{"title": "Himalayan Escape", "activities": {"manali": ["Paragliding in Solang"]}}`}
	svc := newItineraryServiceForTest(stub)

	it, err := svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
		DestinationIDs: []string{"manali"},
		StartDate:      "2024-12-01",
		EndDate:        "2024-12-03",
		TravelStyle:    "active",
		Interests:      []string{"adventure"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Himalayan Escape", it.Title)
	require.Len(t, it.Destinations, 1)
	assert.Equal(t, "Paragliding in Solang", it.Destinations[0].Activities[0])
}

func TestGenerateItineraryActivityDefaults(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{err: errors.New("down")})

	it, err := svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
		DestinationIDs: []string{"goa"},
		StartDate:      "2024-07-01",
		EndDate:        "2024-07-05",
		TravelStyle:    "active",
		Interests:      []string{"Culture", "food"},
	})
	require.NoError(t, err)

	require.Len(t, it.Destinations, 1)
	leg := it.Destinations[0]
	assert.Equal(t, 5, leg.Days)
	// Highlights come first, capped at days+3 entries.
	assert.Equal(t, "Baga Beach", leg.Activities[0])
	assert.Contains(t, leg.Activities, "Adventure activities")
	assert.Contains(t, leg.Activities, "Cultural experience")
	assert.LessOrEqual(t, len(leg.Activities), leg.Days+3)
}

func TestGenerateItineraryUnknownDestinationsSkipped(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{err: errors.New("down")})

	it, err := svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
		DestinationIDs: []string{"atlantis", "goa"},
		StartDate:      "2024-07-01",
		EndDate:        "2024-07-03",
	})
	require.NoError(t, err)
	require.Len(t, it.Destinations, 1)
	assert.Equal(t, "goa", it.Destinations[0].DestinationID)
}

func TestGenerateItineraryRejectsBadInput(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{})

	_, err := svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
		DestinationIDs: []string{"nowhere"},
		StartDate:      "2024-07-01",
		EndDate:        "2024-07-03",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GenerateItinerary(context.Background(), "u", request_models.ItineraryPrompt{
		DestinationIDs: []string{"goa"},
		StartDate:      "not-a-date",
		EndDate:        "2024-07-03",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateItineraryValidatesDestinations(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{})

	_, err := svc.CreateItinerary(context.Background(), "u", request_models.CreateItineraryRequest{
		Title:     "Ghost Tour",
		StartDate: "2024-07-01",
		Destinations: []request_models.ItineraryDestination{
			{DestinationID: "nowhere", Days: 2},
		},
	})
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestCreateAndFetchItinerary(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{})

	created, err := svc.CreateItinerary(context.Background(), "user-9", request_models.CreateItineraryRequest{
		Title:     "Weekend in Goa",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-03",
		Destinations: []request_models.ItineraryDestination{
			{DestinationID: "goa", Days: 3, Activities: []string{"Beach day"}},
		},
		TotalBudget: 12000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsAIGenerated)

	fetched, err := svc.GetItinerary(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend in Goa", fetched.Title)
	assert.Equal(t, "user-9", fetched.UserID)
}

func TestListItinerariesIncludesSeeds(t *testing.T) {
	svc := newItineraryServiceForTest(&stubTextGen{})

	itineraries, err := svc.ListItineraries(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(itineraries), 3)
}
