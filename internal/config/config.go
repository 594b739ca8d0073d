package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Signup API consumed by the onboarding pipeline
	SignupAPIURL  string
	SignupTimeout time.Duration

	// Durable onboarding store
	Store StoreConfig
}

// StoreConfig selects and configures the durable key-value store used by the
// onboarding pipeline.
type StoreConfig struct {
	Driver         string // "sqlite" or "redis"
	Path           string
	RedisAddr      string
	RedisPassword  string
	RedisNamespace string
}

// Store drivers.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
)

const defaultSignupTimeout = 10 * time.Second

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return fromEnv(), nil
}

func fromEnv() *Config {
	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "4000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "rewards"),
		DBPassword: getEnv("DB_PASSWORD", "rewards"),
		DBName:     getEnv("DB_NAME", "rewardstracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SignupAPIURL: getEnv("SIGNUP_API_URL", "http://localhost:4000"),

		Store: StoreConfig{
			Driver:         getEnv("STORE_DRIVER", StoreDriverSQLite),
			Path:           getEnv("STORE_PATH", "onboarding.db"),
			RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword:  getEnv("REDIS_PASSWORD", ""),
			RedisNamespace: getEnv("REDIS_NAMESPACE", "onboarding"),
		},
	}

	timeoutStr := getEnv("SIGNUP_TIMEOUT", defaultSignupTimeout.String())
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		log.Printf("Warning: invalid SIGNUP_TIMEOUT value '%s', falling back to %s\n", timeoutStr, defaultSignupTimeout)
		timeout = defaultSignupTimeout
	}
	config.SignupTimeout = timeout

	return config
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
