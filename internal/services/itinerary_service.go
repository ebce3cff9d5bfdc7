package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"travo/internal/models/domain_models"
	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/internal/repositories"
	"travo/pkg/utils"
)

const itinerarySystemPrompt = "You are a smart AI travel planner named TravoBot that helps users generate a full trip itinerary " +
	"based on their preferences and budget. Your job is to generate recommendations for activities, places to visit, " +
	"and other details for a travel plan. Provide detailed activities that align with the user's interests and travel style."

type ItineraryServiceInterface interface {
	ListItineraries(ctx context.Context) ([]response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, id string) (response_models.ItineraryResponse, error)
	CreateItinerary(ctx context.Context, userID string, req request_models.CreateItineraryRequest) (response_models.ItineraryResponse, error)
	// GenerateItinerary builds an itinerary from catalog destinations:
	// days distributed evenly with the remainder going to the first legs,
	// activities merged from model suggestions and catalog highlights.
	// Model failure degrades to the heuristic-only result, never an error.
	GenerateItinerary(ctx context.Context, userID string, prompt request_models.ItineraryPrompt) (response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	itineraryRepo   repositories.ItineraryRepository
	destinationRepo repositories.DestinationRepository
	textgen         utils.TextGenerationClient
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	destinationRepo repositories.DestinationRepository,
	textgen utils.TextGenerationClient,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo:   itineraryRepo,
		destinationRepo: destinationRepo,
		textgen:         textgen,
	}
}

func (s *ItineraryService) ListItineraries(ctx context.Context) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		responses = append(responses, toItineraryResponse(it))
	}
	return responses, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (response_models.ItineraryResponse, error) {
	it, err := s.itineraryRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}
	return toItineraryResponse(it), nil
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, userID string, req request_models.CreateItineraryRequest) (response_models.ItineraryResponse, error) {
	if req.Title == "" || req.StartDate == "" || len(req.Destinations) == 0 {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}

	legs := make([]domain_models.ItineraryLeg, 0, len(req.Destinations))
	for _, leg := range req.Destinations {
		if _, err := s.destinationRepo.FindByID(ctx, leg.DestinationID); err != nil {
			return response_models.ItineraryResponse{}, err
		}
		legs = append(legs, domain_models.ItineraryLeg{
			DestinationID: leg.DestinationID,
			Days:          leg.Days,
			Activities:    leg.Activities,
		})
	}

	itinerary := &domain_models.Itinerary{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        req.Title,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Destinations: legs,
		TotalBudget:  req.TotalBudget,
		CreatedAt:    utils.FormatDate(utils.NowIST()),
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return response_models.ItineraryResponse{}, err
	}
	return toItineraryResponse(itinerary), nil
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, userID string, prompt request_models.ItineraryPrompt) (response_models.ItineraryResponse, error) {
	destinations := make([]*domain_models.Destination, 0, len(prompt.DestinationIDs))
	for _, id := range prompt.DestinationIDs {
		d, err := s.destinationRepo.FindByID(ctx, id)
		if err != nil {
			log.Printf("Skipping unknown destination %q in itinerary prompt", id)
			continue
		}
		destinations = append(destinations, d)
	}
	if len(destinations) == 0 {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}

	start, okStart := utils.ParseDate(prompt.StartDate)
	end, okEnd := utils.ParseDate(prompt.EndDate)
	if !okStart || !okEnd {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}
	totalDays := utils.DaysBetween(start, end)

	detail := s.generateDetail(ctx, prompt, destinations)

	daysPerDestination := totalDays / len(destinations)
	remainingDays := totalDays % len(destinations)

	legs := make([]domain_models.ItineraryLeg, 0, len(destinations))
	for i, d := range destinations {
		days := daysPerDestination
		if i < remainingDays {
			days++
		}

		defaults := append([]string{}, d.Highlights...)
		defaults = append(defaults, "Explore local cuisine", "Visit local markets")
		if prompt.TravelStyle == "active" {
			defaults = append(defaults, "Adventure activities")
		} else {
			defaults = append(defaults, "Relaxation time")
		}
		if containsFold(prompt.Interests, "culture") {
			defaults = append(defaults, "Cultural experience")
		} else {
			defaults = append(defaults, "Scenic photography")
		}

		var merged []string
		if detail != nil {
			merged = append(merged, detail.Activities[d.ID]...)
		}
		merged = append(merged, defaults...)

		legs = append(legs, domain_models.ItineraryLeg{
			DestinationID: d.ID,
			Days:          days,
			Activities:    dedupeStrings(merged, days+3),
		})
	}

	title := ""
	if detail != nil {
		title = detail.Title
	}
	if title == "" {
		title = buildItineraryTitle(destinations, prompt.TravelStyle)
	}

	itinerary := &domain_models.Itinerary{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         title,
		StartDate:     prompt.StartDate,
		EndDate:       prompt.EndDate,
		Destinations:  legs,
		TotalBudget:   prompt.Budget,
		CreatedAt:     utils.FormatDate(utils.NowIST()),
		IsAIGenerated: true,
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return response_models.ItineraryResponse{}, err
	}
	return toItineraryResponse(itinerary), nil
}

type itineraryDetail struct {
	Title      string              `json:"title"`
	Activities map[string][]string `json:"activities"`
}

// generateDetail asks the model for a title and per-destination activity
// suggestions. A nil return means "use the heuristics only".
func (s *ItineraryService) generateDetail(ctx context.Context, prompt request_models.ItineraryPrompt, destinations []*domain_models.Destination) *itineraryDetail {
	ids := make([]string, 0, len(destinations))
	for _, d := range destinations {
		ids = append(ids, d.ID)
	}

	userMessage := fmt.Sprintf(`Please suggest activities, a title, and other recommendations for my trip to the following destinations: %s.
The trip is from %s to %s with a budget of %d INR.
My interests include %s and I prefer a %s travel style with %s accommodation.

Format your response as JSON with the following structure:
{
  "title": "Suggested title for the trip",
  "activities": {
    "%s": ["Activity 1", "Activity 2"]
  }
}`,
		strings.Join(ids, ", "), prompt.StartDate, prompt.EndDate, prompt.Budget,
		strings.Join(prompt.Interests, ", "), prompt.TravelStyle, prompt.Accommodation, ids[0])

	raw, err := s.textgen.GenerateText(ctx, itinerarySystemPrompt, userMessage, utils.GenerationOptions{
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		log.Printf("Itinerary detail generation failed, using heuristics: %v", err)
		return nil
	}

	extracted := utils.ExtractJSONObject(raw)
	if extracted == "" {
		return nil
	}
	var detail itineraryDetail
	if err := json.Unmarshal([]byte(extracted), &detail); err != nil {
		log.Printf("Failed to parse itinerary detail response: %v", err)
		return nil
	}
	return &detail
}

func buildItineraryTitle(destinations []*domain_models.Destination, travelStyle string) string {
	regions := make(map[string]bool)
	states := make(map[string]bool)
	for _, d := range destinations {
		regions[d.Region] = true
		states[d.State] = true
	}

	title := "Indian Discovery Tour"
	if len(regions) == 1 {
		title = destinations[0].Region + " Adventure"
	} else if len(states) == 1 {
		title = "Exploring " + destinations[0].State
	}

	switch travelStyle {
	case "relaxed":
		title = "Relaxing " + title
	case "active":
		title = "Active " + title
	}
	return title
}

func toItineraryResponse(it *domain_models.Itinerary) response_models.ItineraryResponse {
	legs := make([]response_models.ItineraryLegResponse, 0, len(it.Destinations))
	for _, leg := range it.Destinations {
		legs = append(legs, response_models.ItineraryLegResponse{
			DestinationID: leg.DestinationID,
			Days:          leg.Days,
			Activities:    leg.Activities,
		})
	}
	return response_models.ItineraryResponse{
		ID:            it.ID,
		UserID:        it.UserID,
		Title:         it.Title,
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		Destinations:  legs,
		TotalBudget:   it.TotalBudget,
		CreatedAt:     it.CreatedAt,
		IsAIGenerated: it.IsAIGenerated,
	}
}

func dedupeStrings(values []string, limit int) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
