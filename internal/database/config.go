package database

import (
	"fmt"

	"rewardstracker/internal/config"
)

// Config holds database configuration
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// MigrationsPath is the golang-migrate source URL.
	MigrationsPath string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(appConfig *config.Config) *Config {
	return &Config{
		Host:           appConfig.DBHost,
		Port:           appConfig.DBPort,
		User:           appConfig.DBUser,
		Password:       appConfig.DBPassword,
		DBName:         appConfig.DBName,
		SSLMode:        appConfig.DBSSLMode,
		MigrationsPath: "file://migrations",
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the postgres:// form of the connection string used by golang-migrate.
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
