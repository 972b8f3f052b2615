package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ppa-analysis/internal/api/models"
)

// SweepStore keeps completed sweeps in memory for later retrieval by ID.
// Entries expire after a TTL; a background goroutine reaps them.
type SweepStore struct {
	mu    sync.RWMutex
	store map[string]sweepEntry
	ttl   time.Duration
}

type sweepEntry struct {
	response  models.SweepResponse
	expiresAt time.Time
}

// NewSweepStore creates a store and starts its reaper.
func NewSweepStore(ttl time.Duration) *SweepStore {
	s := &SweepStore{
		store: make(map[string]sweepEntry),
		ttl:   ttl,
	}
	go s.reap()
	return s
}

// Put stores a sweep under a fresh ID and returns it.
func (s *SweepStore) Put(resp models.SweepResponse) string {
	id := uuid.NewString()
	resp.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = sweepEntry{
		response:  resp,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored sweep if present and not expired.
func (s *SweepStore) Get(id string) (models.SweepResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.store[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return models.SweepResponse{}, false
	}
	return entry.response, true
}

func (s *SweepStore) reap() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
