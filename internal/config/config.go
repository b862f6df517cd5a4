package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	KafkaBrokers []string
	KafkaTopic   string

	FileServiceURL string

	LogLevel        string
	ShutdownTimeout time.Duration
}

const (
	defaultHTTPAddr        = ":8080"
	defaultKafkaTopic      = "mercur.events"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// Load reads the full configuration from env.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:   optionalString("HTTP_ADDR", defaultHTTPAddr),
		KafkaTopic: optionalString("KAFKA_TOPIC", defaultKafkaTopic),
		LogLevel:   optionalString("LOG_LEVEL", defaultLogLevel),
	}

	databaseURL, err := requiredString("DATABASE_URL")
	if err != nil {
		return cfg, err
	}
	cfg.DatabaseURL = databaseURL

	brokers, err := requiredString("KAFKA_BROKERS")
	if err != nil {
		return cfg, err
	}
	cfg.KafkaBrokers = splitList(brokers)

	fileServiceURL, err := requiredString("FILE_SERVICE_URL")
	if err != nil {
		return cfg, err
	}
	cfg.FileServiceURL = fileServiceURL

	if cfg.ShutdownTimeout, err = optionalDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func requiredString(name string) (string, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return raw, nil
}

func optionalString(name, fallback string) string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return raw
}

func optionalDuration(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return val, nil
}

func splitList(raw string) []string {
	var results []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			results = append(results, part)
		}
	}
	return results
}
