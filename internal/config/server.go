package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the bind address (empty string means all interfaces).
	Host string
	// Port is the server port (":8080" or "8080").
	Port string
	// ReadTimeout caps reading the entire request.
	ReadTimeout time.Duration
	// WriteTimeout caps writing the response.
	WriteTimeout time.Duration
	// IdleTimeout caps keep-alive waits between requests.
	IdleTimeout time.Duration
	// ShutdownTimeout caps graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration
}

// LoadServerConfigFromEnv loads server configuration from environment variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// GetAddress returns the listen address in host:port form.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	for name, d := range map[string]time.Duration{
		"SERVER_READ_TIMEOUT":     c.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    c.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":     c.IdleTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be greater than 0", name)
		}
	}
	return nil
}
