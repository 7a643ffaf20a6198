package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultWSURL            = "ws://127.0.0.1:8000/ws"
	DefaultAPIBaseURL       = "http://127.0.0.1:8000"
	DefaultAPITimeout       = 10 * time.Second
	DefaultPingInterval     = 25 * time.Second
	DefaultReconnectDelay   = 3 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
	DefaultEventBufferSize  = 256
	DefaultRefreshInterval  = 1 * time.Second
	DefaultLocale           = "en"
	DefaultLogLevel         = "info"
)

func (c *Config) applyDefaults() {
	// Stream defaults
	if c.Stream.URL == "" {
		c.Stream.URL = DefaultWSURL
	}
	if c.Stream.PingInterval == 0 {
		c.Stream.PingInterval = DefaultPingInterval
	}
	if c.Stream.ReconnectDelay == 0 {
		c.Stream.ReconnectDelay = DefaultReconnectDelay
	}
	if c.Stream.HandshakeTimeout == 0 {
		c.Stream.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultWriteTimeout
	}
	if c.Stream.EventBufferSize == 0 {
		c.Stream.EventBufferSize = DefaultEventBufferSize
	}

	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// UI defaults
	if c.UI.RefreshInterval == 0 {
		c.UI.RefreshInterval = DefaultRefreshInterval
	}
	if c.UI.Locale == "" {
		c.UI.Locale = DefaultLocale
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
