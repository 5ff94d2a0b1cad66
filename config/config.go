// ABOUTME: Configuration loader for the DocTalk client
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend
	APIBaseURL     string // base URL of the DocTalk backend; /api is appended by the client
	RequestTimeout int    // seconds, per-request HTTP timeout (default 30)

	// Local state
	StateDir string // directory for tokens and chat history (default ~/.doctalk)

	// Behavior
	DemoFallback  bool    // substitute demo data when the backend is unreachable (default: true)
	DoctorsTTL    int     // seconds, doctor directory cache TTL (default 300)
	ChatRPS       float64 // max chat messages per second (default 1)
	ColorDisabled bool    // disable ANSI color in output
}

// TokenPath returns the location of the persisted token pair.
func (c *Config) TokenPath() string {
	return filepath.Join(c.StateDir, "tokens.json")
}

// HistoryPath returns the location of the chat transcript database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.StateDir, "history.db")
}

func Load() (*Config, error) {
	// A .env beside the binary is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     strings.TrimRight(getEnv("DOCTALK_API_URL", "http://localhost:8000"), "/"),
		RequestTimeout: getEnvInt("DOCTALK_TIMEOUT", 30),
		StateDir:       os.Getenv("DOCTALK_HOME"),
		DemoFallback:   getEnvBool("DOCTALK_DEMO_FALLBACK", true),
		DoctorsTTL:     getEnvInt("DOCTALK_DOCTORS_TTL", 300),
		ChatRPS:        getEnvFloat("DOCTALK_CHAT_RPS", 1),
		ColorDisabled:  getEnvBool("NO_COLOR", false),
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".doctalk")
	}

	if !strings.Contains(cfg.APIBaseURL, "://") {
		cfg.APIBaseURL = "https://" + cfg.APIBaseURL
	}

	if cfg.RequestTimeout < 1 || cfg.RequestTimeout > 600 {
		return nil, fmt.Errorf("DOCTALK_TIMEOUT must be between 1 and 600, got %d", cfg.RequestTimeout)
	}
	if cfg.DoctorsTTL < 0 {
		return nil, fmt.Errorf("DOCTALK_DOCTORS_TTL must not be negative, got %d", cfg.DoctorsTTL)
	}
	if cfg.ChatRPS <= 0 {
		return nil, fmt.Errorf("DOCTALK_CHAT_RPS must be positive, got %v", cfg.ChatRPS)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
