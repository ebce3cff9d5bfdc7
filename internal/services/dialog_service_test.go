package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travo/internal/models/response_models"
	"travo/pkg/memcache"
	"travo/pkg/utils"
)

func TestDialogServiceFullFlow(t *testing.T) {
	handoff := memcache.NewTripHandoff()
	dialog := NewDialogService(handoff)

	first := dialog.Start("session-1")
	assert.Equal(t, "Where would you like to travel in India?", first.Content)
	assert.Equal(t, response_models.MessageTypeText, first.Type)
	assert.True(t, dialog.Active("session-1"))

	answers := []string{"Goa", "2024-07-01", "2024-07-05", "20000", "beach, food", "2", "train"}

	var last response_models.ChatMessage
	for _, answer := range answers {
		var err error
		last, err = dialog.SubmitAnswer("session-1", answer)
		require.NoError(t, err)
	}

	// The 7th answer completes the flow and yields the summary.
	assert.Equal(t, response_models.MessageTypeOptions, last.Type)
	assert.Equal(t, []string{OptionViewItinerary, OptionCheckLater}, last.Options)
	assert.Contains(t, last.Content, "Destination: Goa")
	assert.Contains(t, last.Content, "₹20000")
	assert.False(t, dialog.Active("session-1"))

	trip, ok := dialog.Trip("session-1")
	require.True(t, ok)
	assert.Equal(t, "Goa", trip.Destination)
	assert.Equal(t, "2024-07-01", trip.StartDate)
	assert.Equal(t, "2024-07-05", trip.EndDate)
	assert.Equal(t, 20000, trip.Budget)
	assert.Equal(t, []string{"beach", "food"}, trip.Activities)
	assert.Equal(t, 2, trip.Travelers)
	assert.Equal(t, "train", trip.TravelMode)
}

func TestDialogServiceQuestionCount(t *testing.T) {
	dialog := NewDialogService(memcache.NewTripHandoff())

	dialog.Start("s")
	questions := 1
	for i := 0; i < 6; i++ {
		msg, err := dialog.SubmitAnswer("s", "anything")
		require.NoError(t, err)
		assert.Equal(t, response_models.MessageTypeText, msg.Type)
		questions++
	}
	assert.Equal(t, 7, questions)

	summary, err := dialog.SubmitAnswer("s", "last answer")
	require.NoError(t, err)
	assert.Equal(t, response_models.MessageTypeOptions, summary.Type)
}

func TestDialogServiceKeepsDefaultsOnNonNumericAnswers(t *testing.T) {
	dialog := NewDialogService(memcache.NewTripHandoff())

	dialog.Start("s")
	answers := []string{"Manali", "2024-12-01", "2024-12-04", "twenty thousand", "trekking", "two of us", "car"}
	for _, answer := range answers {
		_, err := dialog.SubmitAnswer("s", answer)
		require.NoError(t, err)
	}

	trip, ok := dialog.Trip("s")
	require.True(t, ok)
	assert.Equal(t, 0, trip.Budget)
	assert.Equal(t, 1, trip.Travelers)
}

func TestDialogServiceSubmitWithoutSession(t *testing.T) {
	dialog := NewDialogService(memcache.NewTripHandoff())

	_, err := dialog.SubmitAnswer("missing", "Goa")
	assert.ErrorIs(t, err, utils.ErrNoActiveDialog)

	_, err = dialog.SelectOption("missing", OptionViewItinerary)
	assert.ErrorIs(t, err, utils.ErrNoActiveDialog)
}

func TestDialogServiceAcceptWritesHandoff(t *testing.T) {
	handoff := memcache.NewTripHandoff()
	dialog := NewDialogService(handoff)

	dialog.Start("s")
	answers := []string{"Goa", "2024-07-01", "2024-07-05", "20000", "beach", "2", "train"}
	for _, answer := range answers {
		_, err := dialog.SubmitAnswer("s", answer)
		require.NoError(t, err)
	}

	msg, err := dialog.SelectOption("s", OptionViewItinerary)
	require.NoError(t, err)
	assert.Equal(t, response_models.MessageTypeRedirect, msg.Type)
	assert.Equal(t, PlannerRedirectPath, msg.RedirectLink)

	trip, ok := handoff.Consume("s")
	require.True(t, ok)
	assert.Equal(t, "Goa", trip.Destination)

	// Session is gone after the option resolves.
	_, err = dialog.SelectOption("s", OptionViewItinerary)
	assert.ErrorIs(t, err, utils.ErrNoActiveDialog)
}

func TestDialogServiceDeclineLeavesNoHandoff(t *testing.T) {
	handoff := memcache.NewTripHandoff()
	dialog := NewDialogService(handoff)

	dialog.Start("s")
	for i := 0; i < 7; i++ {
		_, err := dialog.SubmitAnswer("s", "anything")
		require.NoError(t, err)
	}

	msg, err := dialog.SelectOption("s", OptionCheckLater)
	require.NoError(t, err)
	assert.Equal(t, response_models.MessageTypeText, msg.Type)
	assert.Empty(t, msg.RedirectLink)

	_, ok := handoff.Consume("s")
	assert.False(t, ok)
}

func TestDialogServiceCompletedSessionRejectsAnswers(t *testing.T) {
	dialog := NewDialogService(memcache.NewTripHandoff())

	dialog.Start("s")
	for i := 0; i < 7; i++ {
		_, err := dialog.SubmitAnswer("s", "anything")
		require.NoError(t, err)
	}

	_, err := dialog.SubmitAnswer("s", "one more")
	assert.ErrorIs(t, err, utils.ErrNoActiveDialog)
}
