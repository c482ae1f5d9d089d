// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"bsm-service/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging
	Log logger.Options

	// Type-B transport
	ListenAddr      string
	ServerAddr      string
	SendInterval    time.Duration
	ReceiveInterval time.Duration
	StaleTimeout    time.Duration
	MaxBufferBytes  int
	ClientEnabled   bool

	// Generator
	GeneratorAirport      string
	GeneratorProfilesFile string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresDSN string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		Log: logger.Options{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
			Compress:   getEnvAsBool("LOG_COMPRESS", false),
		},

		ListenAddr:      getEnv("BSM_LISTEN_ADDR", ":55555"),
		ServerAddr:      getEnv("BSM_SERVER_ADDR", "127.0.0.1:55555"),
		SendInterval:    getEnvAsDuration("BSM_SEND_INTERVAL", 5*time.Second),
		ReceiveInterval: getEnvAsDuration("BSM_RECEIVE_INTERVAL", time.Second),
		StaleTimeout:    getEnvAsDuration("BSM_STALE_TIMEOUT", 30*time.Second),
		MaxBufferBytes:  getEnvAsInt("BSM_MAX_BUFFER_BYTES", 1<<20),
		ClientEnabled:   getEnvAsBool("CLIENT_ENABLED", true),

		GeneratorAirport:      getEnv("GENERATOR_AIRPORT", "MCO"),
		GeneratorProfilesFile: getEnv("GENERATOR_PROFILES_FILE", ""),

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "bsm"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("5s", "250ms") or a plain number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	return defaultValue
}
