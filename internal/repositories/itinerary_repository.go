package repositories

import (
	"context"
	"sync"

	"travo/internal/models/domain_models"
	"travo/pkg/utils"
)

type ItineraryRepository interface {
	ListAll(ctx context.Context) ([]*domain_models.Itinerary, error)
	FindByID(ctx context.Context, id string) (*domain_models.Itinerary, error)
	Insert(ctx context.Context, itinerary *domain_models.Itinerary) error
}

// itineraryRepository keeps itineraries in memory for the lifetime of the
// process; durability beyond that is explicitly not offered.
type itineraryRepository struct {
	mu          sync.RWMutex
	itineraries []*domain_models.Itinerary
}

func NewItineraryRepository() ItineraryRepository {
	return &itineraryRepository{
		itineraries: seedItineraries(),
	}
}

func (r *itineraryRepository) ListAll(ctx context.Context) ([]*domain_models.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain_models.Itinerary, len(r.itineraries))
	copy(out, r.itineraries)
	return out, nil
}

func (r *itineraryRepository) FindByID(ctx context.Context, id string) (*domain_models.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.itineraries {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, utils.ErrItineraryNotFound
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *domain_models.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.itineraries = append(r.itineraries, itinerary)
	return nil
}

func seedItineraries() []*domain_models.Itinerary {
	return []*domain_models.Itinerary{
		{
			ID: "itinerary-1", UserID: "user-1", Title: "Goa & Manali Adventure",
			StartDate: "2024-07-01", EndDate: "2024-07-07",
			Destinations: []domain_models.ItineraryLeg{
				{DestinationID: "goa", Days: 3, Activities: []string{"Beach visit", "Water sports", "Nightlife"}},
				{DestinationID: "manali", Days: 4, Activities: []string{"Hiking", "Snow activities", "Sightseeing"}},
			},
			TotalBudget: 30000, CreatedAt: "2024-06-15", IsAIGenerated: true,
		},
		{
			ID: "itinerary-2", UserID: "user-2", Title: "Kerala Backwaters Tour",
			StartDate: "2024-08-10", EndDate: "2024-08-15",
			Destinations: []domain_models.ItineraryLeg{
				{DestinationID: "kerala", Days: 5, Activities: []string{"Backwater cruise", "Ayurvedic spa", "Cultural show"}},
			},
			TotalBudget: 25000, CreatedAt: "2024-06-20",
		},
		{
			ID: "itinerary-3", UserID: "user-1", Title: "Rajasthan Cultural Trip",
			StartDate: "2024-09-01", EndDate: "2024-09-10",
			Destinations: []domain_models.ItineraryLeg{
				{DestinationID: "jaipur", Days: 4, Activities: []string{"Fort visit", "Shopping", "City tour"}},
				{DestinationID: "udaipur", Days: 6, Activities: []string{"Lake visit", "Palace tour", "Boat ride"}},
			},
			TotalBudget: 40000, CreatedAt: "2024-07-01", IsAIGenerated: true,
		},
	}
}
