// Package viewer resolves who is asking: their content-safety preference and
// the anime ids they already track. Account and list storage belong to the
// surrounding application; this package only reads them.
package viewer

import (
	"context"
	"slices"
	"sync"
)

type Preferences struct {
	NSFWAllowed bool `json:"nsfw_allowed"`
}

type Store interface {
	Preferences(ctx context.Context, userID string) (Preferences, error)
	TrackedIDs(ctx context.Context, userID string) ([]int, error)
}

// InMemoryStore is used when no database is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	prefs   map[string]Preferences
	tracked map[string][]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		prefs:   make(map[string]Preferences),
		tracked: make(map[string][]int),
	}
}

func (s *InMemoryStore) SetPreferences(userID string, p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = p
}

func (s *InMemoryStore) Track(userID string, malIDs ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := append(s.tracked[userID], malIDs...)
	slices.Sort(ids)
	s.tracked[userID] = slices.Compact(ids)
}

func (s *InMemoryStore) Preferences(_ context.Context, userID string) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs[userID], nil
}

func (s *InMemoryStore) TrackedIDs(_ context.Context, userID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tracked[userID]), nil
}
