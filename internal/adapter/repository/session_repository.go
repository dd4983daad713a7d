package repository

import (
	"sync"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
)

// MemorySessionStore is an in-memory session repository. It is bounded:
// storing a new user past capacity evicts the least-recently-updated session.
// Existing users always replace their own entry and never trigger eviction.
type MemorySessionStore struct {
	mu       sync.RWMutex
	capacity int
	sessions map[string]*entities.Session
}

// DefaultSessionCapacity bounds memory growth across distinct users.
const DefaultSessionCapacity = 1000

// NewMemorySessionStore creates a session store. A capacity <= 0 falls back
// to DefaultSessionCapacity.
func NewMemorySessionStore(capacity int) *MemorySessionStore {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	return &MemorySessionStore{
		capacity: capacity,
		sessions: make(map[string]*entities.Session),
	}
}

// Get returns the session for a user, if one exists.
func (s *MemorySessionStore) Get(userID string) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	return session, ok
}

// Put stores a session, replacing any existing session for the same user.
func (s *MemorySessionStore) Put(session *entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.UserID]; !exists && len(s.sessions) >= s.capacity {
		s.evictOldestLocked()
	}
	s.sessions[session.UserID] = session
}

// Count returns the number of stored sessions.
func (s *MemorySessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// evictOldestLocked removes the least-recently-updated session. Caller must
// hold the write lock.
func (s *MemorySessionStore) evictOldestLocked() {
	var oldestID string
	first := true
	for id, session := range s.sessions {
		if first || session.UpdatedAt.Before(s.sessions[oldestID].UpdatedAt) {
			oldestID = id
			first = false
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
