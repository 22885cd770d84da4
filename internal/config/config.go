package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Mail     MailConfig
	Services ServicesConfig
	Server   ServerConfig
}

// MailConfig holds SMTP relay settings for notification emails
type MailConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
	// InternalRecipient receives the internal copy of every notification
	InternalRecipient string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey string
	WebAppURI    string
	// TTSVoice enables spoken replies when set to an OpenAI voice name
	TTSVoice string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Mail relay configuration
	var err error
	if cfg.Mail.Host, err = requireEnv("SMTP_SERVER"); err != nil {
		return nil, err
	}
	if cfg.Mail.Sender, err = requireEnv("EMAIL_FROM"); err != nil {
		return nil, err
	}
	if cfg.Mail.Password, err = requireEnv("EMAIL_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Mail.InternalRecipient, err = requireEnv("EMAIL_TO"); err != nil {
		return nil, err
	}
	smtpPort := getEnvWithDefault("SMTP_PORT", "587")
	cfg.Mail.Port, err = strconv.Atoi(smtpPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SMTP_PORT: %w", err)
	}

	// Services configuration
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = os.Getenv("WEBAPP_URI")
	cfg.Services.TTSVoice = os.Getenv("TTS_VOICE")

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
