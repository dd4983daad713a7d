package message

// PostMessageRequest drives the conversation router over HTTP, mirroring what
// the Telegram transport sends.
type PostMessageRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}
