package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates every configuration value the service reads.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Database: loadDatabaseConfig(),
	}, nil
}

// ServerConfig describes the HTTP server.
type ServerConfig struct {
	Addr string
}

// loadServerConfig parses the listen address.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// DatabaseConfig describes the session store connection.
type DatabaseConfig struct {
	// DSN is the sqlite path or DSN from DATABASE_URL. It may be
	// empty here: the store reports the missing configuration on
	// first use rather than at startup, so the rest of the service
	// can still come up.
	DSN string
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		DSN: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}
}
