package config

import "time"

// Config is the root configuration for the terminal client.
type Config struct {
	Stream StreamConfig `yaml:"stream"`
	API    APIConfig    `yaml:"api"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// StreamConfig holds WebSocket connection settings.
type StreamConfig struct {
	URL              string        `yaml:"url"`
	PingInterval     time.Duration `yaml:"ping_interval"`
	ReconnectDelay   time.Duration `yaml:"reconnect_delay"`
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	EventBufferSize  int           `yaml:"event_buffer_size"`
}

// APIConfig holds REST API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Locale          string        `yaml:"locale"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}
