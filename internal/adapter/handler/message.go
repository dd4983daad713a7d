package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-research-assistant/errors"
	"github.com/johnquangdev/yt-research-assistant/internal/adapter/dto/message"
	"github.com/johnquangdev/yt-research-assistant/internal/domain/repositories"
	"github.com/johnquangdev/yt-research-assistant/internal/usecase/assistant"
)

// MessageHandler drives the conversation flows over the admin HTTP surface.
// It runs the same routing as the Telegram transport, collecting replies
// instead of pushing them.
type MessageHandler struct {
	svc      assistant.Service
	sessions repositories.SessionRepository
	logger   *zap.Logger
}

// NewMessageHandler creates a message handler
func NewMessageHandler(svc assistant.Service, sessions repositories.SessionRepository, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, sessions: sessions, logger: logger}
}

// PostMessage routes one message and returns all replies in send order
func (h *MessageHandler) PostMessage(c echo.Context) error {
	var req message.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	var mu sync.Mutex
	var replies []string
	collect := func(_ context.Context, text string) error {
		mu.Lock()
		defer mu.Unlock()
		replies = append(replies, text)
		return nil
	}

	if err := h.svc.HandleMessage(c.Request().Context(), req.UserID, req.Text, collect); err != nil {
		return HandleError(h.logger, c, errors.ErrGenerationFailed(err))
	}
	return c.JSON(http.StatusOK, message.PostMessageResponse{Replies: replies})
}

// GetSession reports whether a user has a stored session and its shape
func (h *MessageHandler) GetSession(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	session, ok := h.sessions.Get(userID)
	if !ok {
		return c.JSON(http.StatusOK, message.SessionResponse{UserID: userID, Exists: false})
	}
	return c.JSON(http.StatusOK, message.SessionResponse{
		UserID:     userID,
		Exists:     true,
		ChunkCount: len(session.Chunks),
		Language:   string(session.Language),
	})
}
