package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultChunkSize      = 1000
	DefaultOutput         = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvChunkSize = "DISPLOG_CHUNK_SIZE"
	EnvSources   = "DISPLOG_SOURCES"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize: DefaultChunkSize,
		Output:    DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvChunkSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ChunkSize = n
		}
	}
	if v := os.Getenv(EnvSources); v != "" {
		c.Sources = []string{v}
	}
}
