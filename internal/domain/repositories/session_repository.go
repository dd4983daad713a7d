package repositories

import "github.com/johnquangdev/yt-research-assistant/internal/domain/entities"

// SessionRepository stores per-user conversation sessions. Implementations
// must be safe for concurrent use: handlers for different users run in
// parallel. Concurrent writes for the same user are last-write-wins.
type SessionRepository interface {
	// Get returns the session for a user, if one exists.
	Get(userID string) (*entities.Session, bool)

	// Put stores a session, replacing any existing session for the user.
	Put(session *entities.Session)

	// Count returns the number of stored sessions.
	Count() int
}
