package network

import (
	"time"

	"github.com/lixenwraith/alpha-strike/config"
)

// Config holds broadcaster configuration
type Config struct {
	// Address to bind the websocket listener
	Address string

	// Path served by the websocket upgrader
	Path string

	// Timing
	StatusInterval time.Duration
	WriteTimeout   time.Duration
	PongWait       time.Duration

	// Limits
	MaxClients    int
	SendQueueSize int
}

// DefaultConfig returns defaults for a local broadcaster
func DefaultConfig() *Config {
	return &Config{
		Address:        ":7777",
		Path:           "/status",
		StatusInterval: 5 * time.Second,
		WriteTimeout:   2 * time.Second,
		PongWait:       60 * time.Second,
		MaxClients:     16,
		SendQueueSize:  16,
	}
}

// FromConfig overlays the file settings on the defaults
func FromConfig(nc config.NetworkConfig) *Config {
	cfg := DefaultConfig()
	if nc.Address != "" {
		cfg.Address = nc.Address
	}
	if nc.StatusInterval.Duration > 0 {
		cfg.StatusInterval = nc.StatusInterval.Duration
	}
	if nc.WriteTimeout.Duration > 0 {
		cfg.WriteTimeout = nc.WriteTimeout.Duration
	}
	if nc.SendQueue > 0 {
		cfg.SendQueueSize = nc.SendQueue
	}
	return cfg
}
