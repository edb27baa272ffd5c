package builder

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one live session per user for the lifetime of the
// process. Sessions are in-memory only; losing them loses unsaved
// edits, same as closing the browser tab.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

func (s *Store) Get(ownerID uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[ownerID]
	return sess, ok
}

func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.OwnerID()] = sess
}

func (s *Store) Delete(ownerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, ownerID)
}
