package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures used by viper_config.go
// The actual loading is handled by viper in viper_config.go

// ServerConfig represents the server configuration
type ServerConfig struct {
	Server ServerSettings `yaml:"server"`
	Game   GameSettings   `yaml:"game"`
}

// ServerSettings contains server-wide settings
type ServerSettings struct {
	RoomCodeLength int           `yaml:"roomCodeLength"`
	RoomTimeout    time.Duration `yaml:"roomTimeout"`

	// Server settings
	Port            string        `yaml:"port" envconfig:"PORT" required:"true"`
	Host            string        `yaml:"host" envconfig:"HOST" required:"true"`
	ReadTimeout     time.Duration `yaml:"readTimeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idleTimeout" envconfig:"IDLE_TIMEOUT" default:"0s"` // 0 for SSE support
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"` // Timeout for regular HTTP requests (middleware)
	SSETimeout      time.Duration `yaml:"sseTimeout"`     // Timeout for SSE connections (0 = no timeout)

	// Rate limiting (using golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit" envconfig:"RATE_LIMIT" default:"10"`            // requests per second
	RateLimitBurst int     `yaml:"rateLimitBurst" envconfig:"RATE_LIMIT_BURST" default:"20"` // burst size

	// Request limits
	MaxRequestSize    int64 `yaml:"maxRequestSize" envconfig:"MAX_REQUEST_SIZE" default:"1048576"` // 1MB
	MaxSSEConnections int   `yaml:"maxSSEConnections" envconfig:"MAX_SSE_CONNECTIONS" default:"1000"`

	LogLevel  string `yaml:"logLevel" envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `yaml:"logFormat" envconfig:"LOG_FORMAT" default:"text"`
}

// GameSettings contains the rule tunables shared by every room
type GameSettings struct {
	MinPlayersPerRoom     int           `yaml:"minPlayersPerRoom"`
	MaxPlayersPerRoom     int           `yaml:"maxPlayersPerRoom"`
	FinalAccusationWindow time.Duration `yaml:"finalAccusationWindow"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			RoomCodeLength: 5,
			RoomTimeout:    24 * time.Hour,

			// Server defaults
			Port:            "", // Must be set via env
			Host:            "", // Must be set via env
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     0, // 0 for SSE support
			ShutdownTimeout: 30 * time.Second,

			// Rate limiting defaults
			RateLimit:      10, // 10 requests per second
			RateLimitBurst: 20,

			// Request limits
			MaxRequestSize:    1048576, // 1MB
			MaxSSEConnections: 1000,

			LogLevel:  "info",
			LogFormat: "text",
		},
		Game: GameSettings{
			MinPlayersPerRoom:     4,
			MaxPlayersPerRoom:     10,
			FinalAccusationWindow: 5 * time.Minute,
		},
	}
}

// Validate checks if the configuration is valid
func (c *ServerConfig) Validate() error {
	// Required fields
	if c.Server.Port == "" {
		return fmt.Errorf("PORT environment variable must be set")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("HOST environment variable must be set")
	}

	if c.Server.RoomCodeLength < 3 {
		return fmt.Errorf("roomCodeLength must be at least 3")
	}

	// The role table only covers 4 through 10 players; a room outside that
	// range could never start.
	if c.Game.MinPlayersPerRoom < 4 {
		return fmt.Errorf("minPlayersPerRoom must be at least 4")
	}
	if c.Game.MaxPlayersPerRoom > 10 {
		return fmt.Errorf("maxPlayersPerRoom cannot exceed 10")
	}
	if c.Game.MinPlayersPerRoom > c.Game.MaxPlayersPerRoom {
		return fmt.Errorf("minPlayersPerRoom cannot be greater than maxPlayersPerRoom")
	}
	if c.Game.FinalAccusationWindow <= 0 {
		return fmt.Errorf("finalAccusationWindow must be positive")
	}

	return nil
}
