package message

// PostMessageResponse carries every reply the flow produced, in send order
// (progress notices first, generated content last).
type PostMessageResponse struct {
	Replies []string `json:"replies"`
}

// SessionResponse describes a user's stored session, if any.
type SessionResponse struct {
	UserID     string `json:"user_id"`
	Exists     bool   `json:"exists"`
	ChunkCount int    `json:"chunk_count"`
	Language   string `json:"language,omitempty"`
}
