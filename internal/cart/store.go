package cart

import (
	"sync"
	"time"
)

type entry struct {
	ledger    *Ledger
	expiresAt time.Time
}

// Store hands out the ledger bound to a session ID, creating an empty one on
// first use. Entries expire after ttl of inactivity; expired sessions start
// over with an empty ledger, which is the session-expiry clear.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Get returns the session's ledger and refreshes its expiry.
func (s *Store) Get(sessionID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.sessions[sessionID]
	if !ok || now.After(e.expiresAt) {
		e = entry{ledger: NewLedger()}
	}
	e.expiresAt = now.Add(s.ttl)
	s.sessions[sessionID] = e
	s.sweepLocked(now)
	return e.ledger
}

// Drop discards the session's ledger immediately.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
