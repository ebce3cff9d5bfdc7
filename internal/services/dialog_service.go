package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"travo/internal/models/request_models"
	"travo/internal/models/response_models"
	"travo/pkg/memcache"
	"travo/pkg/utils"
)

// Quick-reply options offered once every slot is filled.
const (
	OptionViewItinerary = "Yes, show my itinerary"
	OptionCheckLater    = "No, I'll check later"
)

// PlannerRedirectPath is where the client should take the user after a
// completed guided flow hands its trip parameters off.
const PlannerRedirectPath = "/travobot"

const handoffTTL = 15 * time.Minute

type dialogStep struct {
	field    string
	question string
}

// The fixed intake flow: one question per slot, always in this order,
// never revisited.
var conversationFlow = []dialogStep{
	{field: "destination", question: "Where would you like to travel in India?"},
	{field: "startDate", question: "What's your planned start date? (YYYY-MM-DD)"},
	{field: "endDate", question: "What's your planned end date? (YYYY-MM-DD)"},
	{field: "budget", question: "What's your approximate budget (in INR)?"},
	{field: "activities", question: "What activities are you interested in? (e.g., adventure, culture, food, relaxation)"},
	{field: "travelers", question: "How many travelers will be joining?"},
	{field: "travelMode", question: "What's your preferred mode of travel? (e.g., train, flight, car)"},
}

type DialogServiceInterface interface {
	// Start opens a guided session and returns the first question.
	Start(sessionID string) response_models.ChatMessage
	// Active reports whether sessionID has a question outstanding.
	Active(sessionID string) bool
	// SubmitAnswer stores the answer for the current step and returns the
	// next question, or the trip summary once all slots were asked.
	SubmitAnswer(sessionID string, answer string) (response_models.ChatMessage, error)
	// SelectOption resolves the summary's quick-reply choice. Picking
	// OptionViewItinerary hands the trip off to the planner and returns a
	// redirect message; anything else resets the session to idle.
	SelectOption(sessionID string, option string) (response_models.ChatMessage, error)
	// Trip exposes the captured parameters of a completed session.
	Trip(sessionID string) (request_models.TripParameters, bool)
}

type dialogSession struct {
	step      int
	completed bool
	trip      request_models.TripParameters
}

type DialogService struct {
	mu       sync.Mutex
	sessions map[string]*dialogSession
	handoff  memcache.TripHandoffStore
}

func NewDialogService(handoff memcache.TripHandoffStore) DialogServiceInterface {
	return &DialogService{
		sessions: make(map[string]*dialogSession),
		handoff:  handoff,
	}
}

func (d *DialogService) Start(sessionID string) response_models.ChatMessage {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sessions[sessionID] = &dialogSession{
		trip: request_models.TripParameters{Travelers: 1},
	}
	return assistantTextMessage(conversationFlow[0].question)
}

func (d *DialogService) Active(sessionID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sessions[sessionID]
	return ok && !s.completed
}

func (d *DialogService) SubmitAnswer(sessionID string, answer string) (response_models.ChatMessage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sessions[sessionID]
	if !ok || s.completed {
		return response_models.ChatMessage{}, utils.ErrNoActiveDialog
	}

	d.captureSlot(s, conversationFlow[s.step].field, answer)

	if s.step < len(conversationFlow)-1 {
		s.step++
		return assistantTextMessage(conversationFlow[s.step].question), nil
	}

	s.completed = true
	return d.summaryMessage(s.trip), nil
}

// captureSlot parses the answer according to the slot's type. Unparsable
// numbers leave the slot at its previous value; the planner applies
// defaults later instead of the dialog re-prompting.
func (d *DialogService) captureSlot(s *dialogSession, field, answer string) {
	answer = strings.TrimSpace(answer)

	switch field {
	case "budget":
		if n, err := strconv.Atoi(answer); err == nil {
			s.trip.Budget = n
		} else {
			log.Printf("Ignoring non-numeric budget answer: %q", answer)
		}
	case "travelers":
		if n, err := strconv.Atoi(answer); err == nil {
			s.trip.Travelers = n
		} else {
			log.Printf("Ignoring non-numeric travelers answer: %q", answer)
		}
	case "activities":
		var activities []string
		for _, a := range strings.Split(answer, ",") {
			activities = append(activities, strings.TrimSpace(a))
		}
		s.trip.Activities = activities
	case "destination":
		s.trip.Destination = answer
	case "startDate":
		s.trip.StartDate = answer
	case "endDate":
		s.trip.EndDate = answer
	case "travelMode":
		s.trip.TravelMode = answer
	}
}

func (d *DialogService) summaryMessage(trip request_models.TripParameters) response_models.ChatMessage {
	msg := assistantTextMessage(fmt.Sprintf(
		"Thank you for providing all the details! Here's a summary of your trip:\n\n"+
			"Destination: %s\n"+
			"Dates: %s to %s\n"+
			"Budget: ₹%d\n"+
			"Activities: %s\n"+
			"Travelers: %d\n"+
			"Travel Mode: %s\n\n"+
			"Would you like to view your personalized itinerary?",
		trip.Destination, trip.StartDate, trip.EndDate, trip.Budget,
		strings.Join(trip.Activities, ", "), trip.Travelers, trip.TravelMode))
	msg.Type = response_models.MessageTypeOptions
	msg.Options = []string{OptionViewItinerary, OptionCheckLater}
	return msg
}

func (d *DialogService) SelectOption(sessionID string, option string) (response_models.ChatMessage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sessions[sessionID]
	if !ok || !s.completed {
		return response_models.ChatMessage{}, utils.ErrNoActiveDialog
	}
	delete(d.sessions, sessionID)

	if option == OptionViewItinerary {
		d.handoff.Set(sessionID, s.trip, handoffTTL)
		msg := assistantTextMessage("Great! I've saved your trip details. Let's build your personalized itinerary.")
		msg.Type = response_models.MessageTypeRedirect
		msg.RedirectLink = PlannerRedirectPath
		return msg, nil
	}

	return assistantTextMessage("No problem! You can always come back to me whenever you're ready to plan your trip. Is there anything else I can help you with?"), nil
}

func (d *DialogService) Trip(sessionID string) (request_models.TripParameters, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sessions[sessionID]
	if !ok {
		return request_models.TripParameters{}, false
	}
	return s.trip, true
}

func assistantTextMessage(content string) response_models.ChatMessage {
	return response_models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      "assistant",
		Content:   content,
		Timestamp: time.Now(),
		Type:      response_models.MessageTypeText,
	}
}
