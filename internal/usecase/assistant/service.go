package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
	"github.com/johnquangdev/yt-research-assistant/internal/domain/repositories"
	"github.com/johnquangdev/yt-research-assistant/internal/infrastructure/external/youtube"
)

// Outgoing message texts. These are the user-facing contract of the flows.
const (
	WelcomeMessage = "👋 Welcome to YT Research Assistant!\n\n" +
		"Send a YouTube link to generate a summary.\n" +
		"Ask follow-up questions.\n" +
		"Type 'action points' for key insights.\n" +
		"You can request Hindi, Telugu, Tamil, Kannada, Marathi."

	msgFetchingTranscript  = "🎥 Fetching transcript..."
	msgInvalidLink         = "❌ Invalid YouTube link."
	msgTranscriptFailed    = "❌ Could not retrieve transcript for this video."
	msgAnalyzing           = "🧠 Analyzing video and generating structured insights..."
	msgExtractingInsights  = "📌 Extracting actionable insights..."
	msgRetrievingContext   = "🔎 Retrieving relevant context..."
	msgSendLinkFirst       = "Send a YouTube link first to begin 🚀"
)

// ReplyFunc delivers one outgoing message to the user whose message is being
// handled. Transports bind it to the originating chat.
type ReplyFunc func(ctx context.Context, text string) error

// TranscriptFetcher obtains a video transcript from the transcript provider.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (*entities.Transcript, error)
}

// Service routes incoming messages to conversation flows.
type Service interface {
	// Welcome returns the static start/help text.
	Welcome() string

	// HandleMessage routes one message and sends all replies through reply.
	// User-visible flow failures (invalid link, unavailable transcript) are
	// reported via reply and return nil; the returned error is reserved for
	// unexpected failures the transport should surface generically.
	HandleMessage(ctx context.Context, userID, text string, reply ReplyFunc) error
}

type assistantService struct {
	sessions  repositories.SessionRepository
	fetcher   TranscriptFetcher
	generator *Generator
	chunkSize int
	logger    *zap.Logger
}

// NewService constructs the conversation service.
func NewService(
	sessions repositories.SessionRepository,
	fetcher TranscriptFetcher,
	completer Completer,
	chunkSize int,
	logger *zap.Logger,
) Service {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &assistantService{
		sessions:  sessions,
		fetcher:   fetcher,
		generator: NewGenerator(completer),
		chunkSize: chunkSize,
		logger:    logger,
	}
}

func (s *assistantService) Welcome() string {
	return WelcomeMessage
}

func (s *assistantService) HandleMessage(ctx context.Context, userID, text string, reply ReplyFunc) error {
	session, hasSession := s.sessions.Get(userID)
	flow := Route(text, hasSession)

	if s.logger != nil {
		s.logger.Info("routing message",
			zap.String("message_id", uuid.New().String()),
			zap.String("user_id", userID),
			zap.String("flow", flow.String()),
		)
	}

	switch flow {
	case FlowNewVideo:
		return s.handleNewVideo(ctx, userID, text, reply)
	case FlowActionPoints:
		return s.handleActionPoints(ctx, session, reply)
	case FlowFollowUp:
		return s.handleFollowUp(ctx, session, text, reply)
	default:
		return reply(ctx, msgSendLinkFirst)
	}
}

// handleNewVideo fetches and summarizes a linked video, replacing the user's
// session. Fetch failures leave any prior session untouched.
func (s *assistantService) handleNewVideo(ctx context.Context, userID, text string, reply ReplyFunc) error {
	if err := reply(ctx, msgFetchingTranscript); err != nil {
		return err
	}

	videoID, ok := youtube.ExtractVideoID(linkToken(text))
	if !ok {
		return reply(ctx, msgInvalidLink)
	}

	transcript, err := s.fetcher.Fetch(ctx, videoID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("transcript fetch failed",
				zap.String("user_id", userID),
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
		return reply(ctx, msgTranscriptFailed)
	}

	chunks := ChunkText(transcript.PlainText, s.chunkSize)
	language := entities.DetectLanguage(text)
	s.sessions.Put(entities.NewSession(userID, chunks, language))

	if err := reply(ctx, msgAnalyzing); err != nil {
		return err
	}

	summary, err := s.generator.Summary(ctx, transcript.TimestampedText, language)
	if err != nil {
		return err
	}
	return reply(ctx, summary)
}

func (s *assistantService) handleActionPoints(ctx context.Context, session *entities.Session, reply ReplyFunc) error {
	if err := reply(ctx, msgExtractingInsights); err != nil {
		return err
	}

	actionPoints, err := s.generator.ActionPoints(ctx, ActionContext(session.Chunks), session.Language)
	if err != nil {
		return err
	}
	return reply(ctx, actionPoints)
}

func (s *assistantService) handleFollowUp(ctx context.Context, session *entities.Session, question string, reply ReplyFunc) error {
	if err := reply(ctx, msgRetrievingContext); err != nil {
		return err
	}

	answer, err := s.generator.Answer(ctx, question, AnswerContext(question, session.Chunks), session.Language)
	if err != nil {
		return err
	}
	return reply(ctx, answer)
}

// linkToken returns the first whitespace-separated token containing a YouTube
// domain marker, so a link embedded in a longer message still parses.
func linkToken(text string) string {
	for _, field := range strings.Fields(text) {
		if strings.Contains(field, "youtube.com") || strings.Contains(field, "youtu.be") {
			return field
		}
	}
	return text
}
