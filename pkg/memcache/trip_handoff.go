package memcache

import (
	"sync"
	"time"

	"travo/internal/models/request_models"
)

// TripHandoffStore passes captured trip parameters from the chat flow to
// the planner flow. One writer (the completed guided dialog), one reader
// (the planner page); the entry is removed on read.
type TripHandoffStore interface {
	Set(sessionID string, trip request_models.TripParameters, ttl time.Duration)

	// Consume returns the trip parameters for sessionID if not expired,
	// and removes the entry (single-use). ok=false if missing/expired.
	Consume(sessionID string) (request_models.TripParameters, bool)

	// Peek reads without consuming.
	Peek(sessionID string) (request_models.TripParameters, bool)
}

type entry struct {
	trip      request_models.TripParameters
	expiresAt time.Time
}

type TripHandoff struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTripHandoff() *TripHandoff {
	return &TripHandoff{
		data: make(map[string]entry),
	}
}

func (s *TripHandoff) Set(sessionID string, trip request_models.TripParameters, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{
		trip:      trip,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TripHandoff) Consume(sessionID string) (request_models.TripParameters, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return request_models.TripParameters{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return request_models.TripParameters{}, false
	}
	delete(s.data, sessionID) // single-use
	return e.trip, true
}

func (s *TripHandoff) Peek(sessionID string) (request_models.TripParameters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return request_models.TripParameters{}, false
	}
	return e.trip, true
}
