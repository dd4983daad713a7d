package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/yt-research-assistant/pkg/validator"

	"github.com/johnquangdev/yt-research-assistant/internal/adapter/handler"
	"github.com/johnquangdev/yt-research-assistant/internal/adapter/repository"
	"github.com/johnquangdev/yt-research-assistant/internal/infrastructure/external/telegram"
	"github.com/johnquangdev/yt-research-assistant/internal/infrastructure/external/youtube"
	"github.com/johnquangdev/yt-research-assistant/internal/usecase/assistant"
	pkgai "github.com/johnquangdev/yt-research-assistant/pkg/ai"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance for the admin HTTP surface
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	log.Println("🗂  Initializing session store...")
	sessions := repository.NewMemorySessionStore(cfg.Assistant.SessionCapacity)

	log.Println("🎬 Initializing transcript client...")
	transcripts := youtube.NewClient(&cfg.YouTube)

	log.Println("🤖 Initializing completion client...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	log.Println("💬 Initializing conversation service...")
	svc := assistant.NewService(sessions, transcripts, groqClient, cfg.Assistant.ChunkSize, logger)

	log.Println("📨 Connecting to Telegram...")
	bot, err := telegram.NewBot(&cfg.Telegram, svc, logger)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}
	log.Printf("✅ Authorized as @%s", bot.Username())

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	messageHandler := handler.NewMessageHandler(svc, sessions, logger)
	router := handler.NewRouter(cfg, messageHandler, sessions)
	router.Setup(e)

	// Start the Telegram poller
	botCtx, stopBot := context.WithCancel(context.Background())
	defer stopBot()
	go func() {
		if err := bot.Run(botCtx); err != nil && err != context.Canceled {
			log.Fatalf("Telegram poller stopped: %v", err)
		}
	}()

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting admin server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	stopBot()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Stopped gracefully")
}
