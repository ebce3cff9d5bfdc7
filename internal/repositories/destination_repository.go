package repositories

import (
	"context"

	"travo/internal/models/domain_models"
	"travo/pkg/utils"
)

type DestinationRepository interface {
	ListAll(ctx context.Context) ([]*domain_models.Destination, error)
	ListByCategory(ctx context.Context, category string) ([]*domain_models.Destination, error)
	FindByID(ctx context.Context, id string) (*domain_models.Destination, error)
}

// destinationRepository serves the curated catalog from memory. The
// catalog is read-only reference data; there is no datastore behind it.
type destinationRepository struct {
	destinations []*domain_models.Destination
	byID         map[string]*domain_models.Destination
}

func NewDestinationRepository() DestinationRepository {
	seed := seedDestinations()
	byID := make(map[string]*domain_models.Destination, len(seed))
	for _, d := range seed {
		byID[d.ID] = d
	}
	return &destinationRepository{
		destinations: seed,
		byID:         byID,
	}
}

func (r *destinationRepository) ListAll(ctx context.Context) ([]*domain_models.Destination, error) {
	return r.destinations, nil
}

func (r *destinationRepository) ListByCategory(ctx context.Context, category string) ([]*domain_models.Destination, error) {
	var out []*domain_models.Destination
	for _, d := range r.destinations {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id string) (*domain_models.Destination, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}
	return d, nil
}

func seedDestinations() []*domain_models.Destination {
	return []*domain_models.Destination{
		{
			ID: "goa", Name: "Goa", State: "Goa", Region: "West India", Category: "beach",
			Description: "Sun-soaked beaches, Portuguese heritage and a famous nightlife strip.",
			Highlights:  []string{"Baga Beach", "Fort Aguada", "Dudhsagar Falls"},
			Rating:      4.6, Price: 12000, Trending: true,
		},
		{
			ID: "manali", Name: "Manali", State: "Himachal Pradesh", Region: "North India", Category: "mountain",
			Description: "Himalayan valley town with snow sports, orchards and trekking routes.",
			Highlights:  []string{"Solang Valley", "Rohtang Pass", "Old Manali"},
			Rating:      4.5, Price: 10000, Trending: true,
		},
		{
			ID: "shimla", Name: "Shimla", State: "Himachal Pradesh", Region: "North India", Category: "mountain",
			Description: "Colonial-era hill station with a celebrated ridge walk and toy train.",
			Highlights:  []string{"The Ridge", "Mall Road", "Jakhoo Temple"},
			Rating:      4.3, Price: 9000,
		},
		{
			ID: "jaipur", Name: "Jaipur", State: "Rajasthan", Region: "North India", Category: "heritage",
			Description: "The Pink City of forts, palaces and bazaars.",
			Highlights:  []string{"Amber Fort", "Hawa Mahal", "City Palace"},
			Rating:      4.7, Price: 11000, Trending: true,
		},
		{
			ID: "udaipur", Name: "Udaipur", State: "Rajasthan", Region: "North India", Category: "heritage",
			Description: "Lake city of white marble palaces and boat rides.",
			Highlights:  []string{"Lake Pichola", "City Palace", "Jag Mandir"},
			Rating:      4.6, Price: 13000,
		},
		{
			ID: "varanasi", Name: "Varanasi", State: "Uttar Pradesh", Region: "North India", Category: "spiritual",
			Description: "Ancient city on the Ganges, ghats and evening aarti ceremonies.",
			Highlights:  []string{"Dashashwamedh Ghat", "Kashi Vishwanath Temple", "Sarnath"},
			Rating:      4.4, Price: 8000,
		},
		{
			ID: "rishikesh", Name: "Rishikesh", State: "Uttarakhand", Region: "North India", Category: "spiritual",
			Description: "Yoga capital on the Ganges with river rafting and ashrams.",
			Highlights:  []string{"Laxman Jhula", "Triveni Ghat", "Beatles Ashram"},
			Rating:      4.5, Price: 7500,
		},
		{
			ID: "kerala", Name: "Kerala Backwaters", State: "Kerala", Region: "South India", Category: "beach",
			Description: "Houseboat cruises through palm-lined lagoons and spice gardens.",
			Highlights:  []string{"Alleppey Houseboats", "Kumarakom", "Ayurvedic retreats"},
			Rating:      4.8, Price: 15000, Trending: true,
		},
		{
			ID: "ooty", Name: "Ooty", State: "Tamil Nadu", Region: "South India", Category: "mountain",
			Description: "Nilgiri hill station of tea estates and a heritage mountain railway.",
			Highlights:  []string{"Nilgiri Mountain Railway", "Botanical Gardens", "Doddabetta Peak"},
			Rating:      4.2, Price: 8500,
		},
		{
			ID: "rann-of-kutch", Name: "Rann of Kutch", State: "Gujarat", Region: "West India", Category: "adventure",
			Description: "White salt desert, full-moon festivals and craft villages.",
			Highlights:  []string{"White Rann", "Rann Utsav", "Kala Dungar"},
			Rating:      4.5, Price: 9500,
		},
		{
			ID: "ladakh", Name: "Ladakh", State: "Ladakh", Region: "North India", Category: "adventure",
			Description: "High-altitude desert of monasteries, passes and turquoise lakes.",
			Highlights:  []string{"Pangong Lake", "Nubra Valley", "Thiksey Monastery"},
			Rating:      4.9, Price: 18000, Trending: true,
		},
		{
			ID: "hampi", Name: "Hampi", State: "Karnataka", Region: "South India", Category: "heritage",
			Description: "Boulder-strewn ruins of the Vijayanagara empire.",
			Highlights:  []string{"Virupaksha Temple", "Vittala Temple", "Matanga Hill"},
			Rating:      4.6, Price: 7000,
		},
	}
}
