package services

import (
	"context"

	"travo/internal/models/domain_models"
	"travo/internal/models/response_models"
	"travo/internal/repositories"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, category string) ([]response_models.DestinationResponse, error)
	GetDestination(ctx context.Context, id string) (response_models.DestinationResponse, error)
	// SmartSuggestions returns up to 4 related destinations: same region
	// first, then same state, duplicates removed.
	SmartSuggestions(ctx context.Context, id string) ([]response_models.DestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

func (s *DestinationService) ListDestinations(ctx context.Context, category string) ([]response_models.DestinationResponse, error) {
	var (
		destinations []*domain_models.Destination
		err          error
	)
	if category != "" {
		destinations, err = s.destinationRepo.ListByCategory(ctx, category)
	} else {
		destinations, err = s.destinationRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		responses = append(responses, toDestinationResponse(d))
	}
	return responses, nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id string) (response_models.DestinationResponse, error) {
	d, err := s.destinationRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.DestinationResponse{}, err
	}
	return toDestinationResponse(d), nil
}

func (s *DestinationService) SmartSuggestions(ctx context.Context, id string) ([]response_models.DestinationResponse, error) {
	destination, err := s.destinationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.destinationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var sameRegion, sameState []*domain_models.Destination
	for _, d := range all {
		if d.ID == destination.ID {
			continue
		}
		if d.Region == destination.Region && len(sameRegion) < 3 {
			sameRegion = append(sameRegion, d)
		}
		if d.State == destination.State && len(sameState) < 2 {
			sameState = append(sameState, d)
		}
	}

	seen := make(map[string]bool)
	suggestions := make([]response_models.DestinationResponse, 0, 4)
	for _, d := range append(sameRegion, sameState...) {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		suggestions = append(suggestions, toDestinationResponse(d))
		if len(suggestions) == 4 {
			break
		}
	}
	return suggestions, nil
}

func toDestinationResponse(d *domain_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		State:       d.State,
		Region:      d.Region,
		Category:    d.Category,
		Description: d.Description,
		Highlights:  d.Highlights,
		Rating:      d.Rating,
		Price:       d.Price,
		Trending:    d.Trending,
	}
}
