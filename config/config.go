package config

import (
	"os"
	"strconv"
)

// Classifier modes. "auto" selects remote when a classifier URL is
// configured and falls back to the built-in demo classifier otherwise.
const (
	ModeAuto     = "auto"
	ModeRemote   = "remote"
	ModeFallback = "fallback"
)

// Config holds all configuration for the disease prediction service
type Config struct {
	// Server configuration
	Port string

	// Classifier configuration
	ClassifierURL  string
	ClassifierMode string

	// Images with a longer edge than this are downscaled before the
	// classifier call. Zero disables preprocessing.
	MaxImageDim int

	// Database configuration (prediction history, optional)
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	PredictionHistory bool

	// RabbitMQ configuration (prediction events, optional)
	AMQPURL              string
	AMQPExchange         string
	PredictionRoutingKey string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server defaults
		Port: getEnv("PORT", "8080"),

		// Classifier defaults
		ClassifierURL:  getEnv("CLASSIFIER_URL", ""),
		ClassifierMode: getEnv("CLASSIFIER_MODE", ModeAuto),
		MaxImageDim:    getIntEnv("MAX_IMAGE_DIM", 1024),

		// Database defaults
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "server"),
		DBPassword:        getEnv("DB_PASSWORD", "secret_app"),
		DBName:            getEnv("DB_NAME", "farmwise"),
		PredictionHistory: getBoolEnv("PREDICTION_HISTORY", false),

		// RabbitMQ defaults
		AMQPURL:              getEnv("AMQP_URL", ""),
		AMQPExchange:         getEnv("AMQP_EXCHANGE", "farmwise"),
		PredictionRoutingKey: getEnv("PREDICTION_ROUTING_KEY", "prediction.completed"),

		// Logging defaults
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// ResolveMode returns the effective classifier mode for this configuration.
func (c *Config) ResolveMode() string {
	switch c.ClassifierMode {
	case ModeRemote, ModeFallback:
		return c.ClassifierMode
	default:
		if c.ClassifierURL != "" {
			return ModeRemote
		}
		return ModeFallback
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable or returns a default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
