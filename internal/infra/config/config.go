package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule      = "@every 10m"
	DefaultHTTPTimeout       = 30 * time.Second
)

// MissingVariablesError lists every required variable that was unset or empty.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Names, ", "))
}

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string // numeric chat ID or @channelusername
	PracticumEndpoint string
	PollSchedule      string // cron spec, "@every 10m" by default
	HTTPTimeout       time.Duration
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, &MissingVariablesError{Names: missing}
	}

	if err := validateChatID(chatIDStr); err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}
	cfg.TelegramChatID = chatIDStr

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}

	cfg.HTTPTimeout = DefaultHTTPTimeout
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// validateChatID accepts an integer chat ID or a channel username like @name.
func validateChatID(id string) error {
	if strings.HasPrefix(id, "@") {
		if len(id) == 1 {
			return fmt.Errorf("empty channel username")
		}
		return nil
	}
	_, err := strconv.ParseInt(id, 10, 64)
	return err
}
