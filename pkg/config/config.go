package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Telegram  TelegramConfig
	Groq      GroqConfig
	YouTube   YouTubeConfig
	Assistant AssistantConfig
}

// ServerConfig holds the admin HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	Environment     string
	ShutdownTimeout int
}

// TelegramConfig holds the bot transport configuration
type TelegramConfig struct {
	BotToken    string
	PollTimeout int
}

// GroqConfig holds completion service configuration
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// YouTubeConfig holds transcript provider configuration
type YouTubeConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// AssistantConfig holds conversation tuning knobs
type AssistantConfig struct {
	ChunkSize       int
	SessionCapacity int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Host:            getEnv("HOST", "0.0.0.0"),
			Port:            getEnv("PORT", "8080"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("BOT_TOKEN", ""),
			PollTimeout: getEnvAsInt("TELEGRAM_POLL_TIMEOUT", 30),
		},
		Groq: GroqConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			BaseURL: getEnv("GROQ_API_URL", "https://api.groq.com"),
			Model:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		},
		YouTube: YouTubeConfig{
			BaseURL:        getEnv("YOUTUBE_BASE_URL", "https://www.youtube.com"),
			TimeoutSeconds: getEnvAsInt("YOUTUBE_TIMEOUT_SECONDS", 15),
		},
		Assistant: AssistantConfig{
			ChunkSize:       getEnvAsInt("CHUNK_SIZE", 250),
			SessionCapacity: getEnvAsInt("SESSION_CAPACITY", 1000),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. Both credentials are required at
// startup; missing either is fatal, not a runtime condition.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	return nil
}

// GetServerAddr returns the admin HTTP listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
