package response_models

import "time"

// Message payload discriminators.
const (
	MessageTypeText            = "text"
	MessageTypeOptions         = "options"
	MessageTypeRecommendations = "recommendations"
	MessageTypeRedirect        = "redirect"
)

// Recommendation block categories.
const (
	RecommendationAccommodation = "accommodation"
	RecommendationTransport     = "transport"
	RecommendationSeason        = "season"
)

// ChatMessage is one entry of the conversation transcript. Type selects
// which optional payload is populated.
type ChatMessage struct {
	ID              string               `json:"id"`
	Role            string               `json:"role"` // "user" | "assistant"
	Content         string               `json:"content"`
	Timestamp       time.Time            `json:"timestamp"`
	Type            string               `json:"type"`
	Options         []string             `json:"options,omitempty"`
	Recommendations *RecommendationBlock `json:"recommendations,omitempty"`
	RedirectLink    string               `json:"redirect_link,omitempty"`
}

type RecommendationBlock struct {
	Type  string               `json:"type"`
	Items []RecommendationItem `json:"items"`
}

type RecommendationItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Category    string `json:"category,omitempty"` // budget | moderate | premium
}
