package utils

import "errors"

var (
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	ErrNoActiveDialog        = errors.New("no active dialog session")
	ErrHandoffNotFound       = errors.New("trip handoff not found")
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidInput          = errors.New("invalid input")
)
