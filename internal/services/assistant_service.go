package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travo/internal/models/response_models"
	"travo/pkg/utils"
)

const chatSystemPrompt = "You are a friendly and knowledgeable travel assistant for an Indian travel platform. " +
	"Provide helpful, accurate, and concise information about Indian destinations, travel tips, and recommendations. " +
	"Keep responses under 150 words and focused on Indian travel. Don't mention that you're an AI assistant."

// Canned policy answers, matched before anything else touches the message.
var policyInfo = []struct {
	keyword string
	answer  string
}{
	{"refund", "Our standard refund policy allows for full refunds if canceled within 48 hours of booking and at least 7 days before the trip. Partial refunds (50%) for cancellations made 3-7 days before the trip. No refunds for cancellations less than 72 hours before the trip unless there are extraordinary circumstances."},
	{"cancellation", "To cancel a booking, please contact our customer service team at least 72 hours before your scheduled trip. Cancellations can be made through your account dashboard or by contacting support@travelindia.com."},
	{"terms", "By using our services, you agree to the terms and conditions including privacy policy, booking terms, and community guidelines. Full terms can be viewed at www.travelindia.com/terms."},
	{"safety", "We prioritize your safety during travels. Always follow local guidelines, keep emergency contacts handy, maintain awareness of your surroundings, secure valuables, and check travel advisories before your trip. Our 24/7 emergency helpline is available at +91-1234567890."},
}

// Keyword to page-path suggestions. The user must confirm the redirect;
// nothing navigates automatically.
var redirectKeywords = []struct {
	keyword string
	path    string
}{
	{"temples", "/destinations?category=spiritual"},
	{"temple", "/destinations?category=spiritual"},
	{"beaches", "/destinations?category=beach"},
	{"beach", "/destinations?category=beach"},
	{"mountains", "/destinations?category=mountain"},
	{"mountain", "/destinations?category=mountain"},
	{"adventure", "/destinations?category=adventure"},
	{"blogs", "/blogs"},
	{"blog", "/blogs"},
}

var seasonalRecommendations = map[string][]string{
	"summer":  {"Manali", "Shimla", "Ooty", "Munnar", "Kodaikanal"},
	"monsoon": {"Goa", "Kerala", "Coorg", "Lonavala", "Udaipur"},
	"winter":  {"Jaipur", "Jodhpur", "Rann of Kutch", "Auli", "Gulmarg"},
}

type AssistantServiceInterface interface {
	// HandleMessage routes one free-text message. When a guided dialog is
	// active for the session the answer goes to it; otherwise the ordered
	// route table below decides.
	HandleMessage(ctx context.Context, sessionID, userName, message string) ([]response_models.ChatMessage, error)
	// SelectOption forwards a quick-reply choice to the guided dialog.
	SelectOption(sessionID, option string) (response_models.ChatMessage, error)
}

type chatRoute struct {
	match  func(lower string) bool
	handle func(ctx context.Context, sessionID, lower string) ([]response_models.ChatMessage, error)
}

type AssistantService struct {
	dialog  DialogServiceInterface
	textgen utils.TextGenerationClient
	routes  []chatRoute
}

func NewAssistantService(dialog DialogServiceInterface, textgen utils.TextGenerationClient) AssistantServiceInterface {
	a := &AssistantService{
		dialog:  dialog,
		textgen: textgen,
	}
	// Priority order is part of the contract: policy answers win over
	// redirects, redirects over the itinerary intent, and only unmatched
	// messages reach the model.
	a.routes = []chatRoute{
		{match: a.matchPolicy, handle: a.handlePolicy},
		{match: a.matchRedirect, handle: a.handleRedirect},
		{match: matchItineraryIntent, handle: a.handleItineraryIntent},
	}
	return a
}

func (a *AssistantService) HandleMessage(ctx context.Context, sessionID, userName, message string) ([]response_models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, utils.ErrInvalidInput
	}

	if a.dialog.Active(sessionID) {
		reply, err := a.dialog.SubmitAnswer(sessionID, message)
		if err != nil {
			return nil, err
		}
		return []response_models.ChatMessage{reply}, nil
	}

	lower := strings.ToLower(message)
	for _, route := range a.routes {
		if route.match(lower) {
			return route.handle(ctx, sessionID, lower)
		}
	}

	return a.handleGeneric(ctx, userName, message)
}

func (a *AssistantService) SelectOption(sessionID, option string) (response_models.ChatMessage, error) {
	return a.dialog.SelectOption(sessionID, option)
}

func (a *AssistantService) matchPolicy(lower string) bool {
	for _, p := range policyInfo {
		if strings.Contains(lower, p.keyword) {
			return true
		}
	}
	return false
}

func (a *AssistantService) handlePolicy(ctx context.Context, sessionID, lower string) ([]response_models.ChatMessage, error) {
	for _, p := range policyInfo {
		if strings.Contains(lower, p.keyword) {
			return []response_models.ChatMessage{assistantTextMessage(p.answer)}, nil
		}
	}
	return nil, utils.ErrInvalidInput
}

func (a *AssistantService) matchRedirect(lower string) bool {
	for _, r := range redirectKeywords {
		if strings.Contains(lower, r.keyword) {
			return true
		}
	}
	return false
}

func (a *AssistantService) handleRedirect(ctx context.Context, sessionID, lower string) ([]response_models.ChatMessage, error) {
	for _, r := range redirectKeywords {
		if strings.Contains(lower, r.keyword) {
			msg := assistantTextMessage(fmt.Sprintf(
				"I can help you find information about %s. Would you like to visit our %s page?", r.keyword, r.keyword))
			msg.Type = response_models.MessageTypeRedirect
			msg.RedirectLink = r.path
			return []response_models.ChatMessage{msg}, nil
		}
	}
	return nil, utils.ErrInvalidInput
}

func matchItineraryIntent(lower string) bool {
	return strings.Contains(lower, "plan") ||
		strings.Contains(lower, "itinerary") ||
		strings.Contains(lower, "trip")
}

func (a *AssistantService) handleItineraryIntent(ctx context.Context, sessionID, lower string) ([]response_models.ChatMessage, error) {
	ack := assistantTextMessage("I'd be happy to help you plan your trip! Let me ask you a few questions to create a personalized itinerary.")
	first := a.dialog.Start(sessionID)
	return []response_models.ChatMessage{ack, first}, nil
}

func (a *AssistantService) handleGeneric(ctx context.Context, userName, message string) ([]response_models.ChatMessage, error) {
	if userName == "" {
		userName = "Traveler"
	}
	contextPrompt := fmt.Sprintf("%s is planning a trip. "+
		"Use collaborative filtering and content-based recommendations. "+
		"Provide itinerary, places, budget, weather insights, and relevant travel tips. User message: %s",
		userName, message)

	response, err := a.textgen.GenerateText(ctx, chatSystemPrompt, contextPrompt, utils.GenerationOptions{
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		// No fabricated answer here; the caller shows the failure.
		return nil, err
	}

	msg := assistantTextMessage(response)
	if block := buildRecommendations(message, time.Now()); block != nil {
		msg.Type = response_models.MessageTypeRecommendations
		msg.Recommendations = block
	}
	return []response_models.ChatMessage{msg}, nil
}

// buildRecommendations sniffs the ORIGINAL user message (not the model
// reply) for domain hints. At most one block is attached; checks are
// mutually exclusive, first match wins.
func buildRecommendations(message string, now time.Time) *response_models.RecommendationBlock {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "hotel", "stay", "accommodation"):
		return &response_models.RecommendationBlock{
			Type: response_models.RecommendationAccommodation,
			Items: []response_models.RecommendationItem{
				{Name: "Budget Inn", Description: "Affordable comfort", Price: "₹1,500-2,500", Category: "budget"},
				{Name: "Comfort Suites", Description: "Mid-range hotel with amenities", Price: "₹3,000-5,000", Category: "moderate"},
				{Name: "Luxury Palace", Description: "Premium experience", Price: "₹7,000+", Category: "premium"},
			},
		}
	case containsAny(lower, "transport", "travel", "bus", "train", "flight"):
		return &response_models.RecommendationBlock{
			Type: response_models.RecommendationTransport,
			Items: []response_models.RecommendationItem{
				{Name: "Bus", Description: "Economic option", Price: "₹500-1,500", Category: "budget"},
				{Name: "Train", Description: "Comfortable journey", Price: "₹1,000-3,000", Category: "moderate"},
				{Name: "Flight", Description: "Fastest option", Price: "₹3,000+", Category: "premium"},
			},
		}
	case containsAny(lower, "season", "weather", "best time"):
		season := seasonForMonth(now)
		items := make([]response_models.RecommendationItem, 0, len(seasonalRecommendations[season]))
		for _, place := range seasonalRecommendations[season] {
			items = append(items, response_models.RecommendationItem{
				Name:        place,
				Description: fmt.Sprintf("Great to visit in %s", season),
				Category:    "moderate",
			})
		}
		return &response_models.RecommendationBlock{
			Type:  response_models.RecommendationSeason,
			Items: items,
		}
	}
	return nil
}

// seasonForMonth buckets the calendar month: Jul-Sep is monsoon, Oct-Mar
// is winter, Apr-Jun is summer.
func seasonForMonth(now time.Time) string {
	month := int(now.Month()) - 1 // zero-based

	if month >= 6 && month <= 8 {
		return "monsoon"
	}
	if month >= 9 || month <= 2 {
		return "winter"
	}
	return "summer"
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
