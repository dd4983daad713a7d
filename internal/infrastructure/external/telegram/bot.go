package telegram

import (
	"context"
	"fmt"
	"strconv"

	backoff "github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-research-assistant/internal/usecase/assistant"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

const msgUnexpectedFailure = "⚠️ Something went wrong while processing your request. Please try again."

// Bot is the Telegram long-polling transport. Each update is handled in its
// own goroutine, so messages from different users do not block each other;
// concurrent messages from the same user are last-write-wins on the session.
type Bot struct {
	api         *tgbotapi.BotAPI
	svc         assistant.Service
	logger      *zap.Logger
	pollTimeout int
}

// NewBot connects to the Telegram Bot API. The initial connection is retried
// with exponential backoff; message flows themselves are never retried.
func NewBot(cfg *config.TelegramConfig, svc assistant.Service, logger *zap.Logger) (*Bot, error) {
	var api *tgbotapi.BotAPI
	connect := func() error {
		var err error
		api, err = tgbotapi.NewBotAPI(cfg.BotToken)
		return err
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)); err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}

	return &Bot{
		api:         api,
		svc:         svc,
		logger:      logger,
		pollTimeout: cfg.PollTimeout,
	}, nil
}

// Username returns the authorized bot account name.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	messageID := uuid.New().String()
	reply := func(ctx context.Context, text string) error {
		_, err := b.api.Send(tgbotapi.NewMessage(message.Chat.ID, text))
		return err
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start", "help":
			if err := reply(ctx, b.svc.Welcome()); err != nil {
				b.logger.Error("failed to send welcome",
					zap.String("message_id", messageID),
					zap.Error(err),
				)
			}
		}
		return
	}

	userID := strconv.FormatInt(message.From.ID, 10)
	if err := b.svc.HandleMessage(ctx, userID, message.Text, reply); err != nil {
		b.logger.Error("message handling failed",
			zap.String("message_id", messageID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		_ = reply(ctx, msgUnexpectedFailure)
	}
}
