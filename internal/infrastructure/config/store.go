package config

import "sync/atomic"

// Store publishes the active GameConfig. Readers take one snapshot per tick;
// a reload swaps in a new snapshot and never mutates a published one.
type Store struct {
	current atomic.Pointer[GameConfig]
}

// NewStore creates a store holding initial.
func NewStore(initial *GameConfig) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *GameConfig {
	return s.current.Load()
}

// Swap publishes next and returns the snapshot it replaced.
func (s *Store) Swap(next *GameConfig) *GameConfig {
	return s.current.Swap(next)
}
