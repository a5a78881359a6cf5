// Package cmd implements the CLI application around the stock admin
// backend. Each subcommand is a thin shell: load config, build the api
// client, fetch, render.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/avikale/stockdesk/api"
)

// Commands lists every subcommand a main package should register.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&consoleCmd{},
		&stocksCmd{},
		&pricesCmd{},
		&portfolioCmd{},
		&orderCmd{},
		&topicCmd{},
	}
}

// Config is everything the commands read from the environment. A .env
// file in the working directory is honored but never required.
type Config struct {
	APIURL      string
	PortfolioID string
	UserID      string
	LogFile     string
	LogLevel    string
}

// Defaults match the demo deployment the original console shipped
// against.
const (
	defaultAPIURL      = "http://localhost:8080"
	defaultPortfolioID = "32b880f9-392b-4cc0-b590-f20809af0108"
	defaultUserID      = "7e525fdd-90da-479f-9d81-80b9cb6aa111"
)

// LoadConfig reads configuration from the environment and an optional
// .env file. Both ids must be UUIDs.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		APIURL:      getEnvOrDefault("STOCKDESK_API_URL", defaultAPIURL),
		PortfolioID: getEnvOrDefault("STOCKDESK_PORTFOLIO_ID", defaultPortfolioID),
		UserID:      getEnvOrDefault("STOCKDESK_USER_ID", defaultUserID),
		LogFile:     getEnvOrDefault("STOCKDESK_LOG_FILE", ""),
		LogLevel:    getEnvOrDefault("STOCKDESK_LOG_LEVEL", "info"),
	}

	if _, err := uuid.Parse(cfg.PortfolioID); err != nil {
		return nil, fmt.Errorf("STOCKDESK_PORTFOLIO_ID %q is not a UUID: %w", cfg.PortfolioID, err)
	}
	if _, err := uuid.Parse(cfg.UserID); err != nil {
		return nil, fmt.Errorf("STOCKDESK_USER_ID %q is not a UUID: %w", cfg.UserID, err)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// NewLogger builds the application logger. Without a log file the
// logger is silent; the TUI owns the terminal and the one-shot
// commands print their result, not their plumbing.
func NewLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    25,
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewClient builds the api client from loaded config.
func NewClient(cfg *Config, log *slog.Logger) (*api.Client, error) {
	return api.New(api.Config{
		BaseURL:     cfg.APIURL,
		PortfolioID: cfg.PortfolioID,
		UserID:      cfg.UserID,
		Logger:      log,
	})
}

// setup is the common preamble of every subcommand.
func setup() (*Config, *slog.Logger, *api.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log := NewLogger(cfg)
	client, err := NewClient(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, client, nil
}
