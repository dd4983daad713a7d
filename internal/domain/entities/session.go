package entities

import "time"

// Session is the per-user conversation state: the chunked transcript of the
// most recently analyzed video and the language replies should use. A new
// video replaces the session wholesale; no flow ever clears one.
type Session struct {
	UserID    string    `json:"user_id"`
	Chunks    []string  `json:"chunks"`
	Language  Language  `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session for a freshly analyzed video.
func NewSession(userID string, chunks []string, language Language) *Session {
	return &Session{
		UserID:    userID,
		Chunks:    chunks,
		Language:  language,
		UpdatedAt: time.Now(),
	}
}
