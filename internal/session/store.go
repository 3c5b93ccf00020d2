package session

import "sync"

// Store keeps the continuation state of every live browse session in
// memory. State is deliberately not persisted: a restart simply means
// every session starts its next generation fresh. Concurrent requests
// against the same key are last-writer-wins.
type Store struct {
	states map[string]State
	mu     sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]State),
	}
}

// Decide resolves the NEW/CONTINUE verdict for the given browse session
// and persists any family invalidation it caused.
func (s *Store) Decide(key string, fam Family, explicitNew bool) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, decision := s.states[key].Decide(fam, explicitNew)
	s.setLocked(key, next)
	return decision
}

// Observe stores the continuation token a successful call returned.
func (s *Store) Observe(key string, fam Family, token, tier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(key, s.states[key].Observe(fam, token, tier))
}

// Get returns the current state for inspection (eligibility checks).
func (s *Store) Get(key string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.states[key]
}

// Reset drops any stored continuation for the session.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, key)
}

func (s *Store) setLocked(key string, state State) {
	if state.Kind == KindNone {
		delete(s.states, key)
		return
	}
	s.states[key] = state
}
