package config

import (
	"fmt"
	"net/url"
)

// Validate checks that all values are usable. It expects defaults to have
// been applied already.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Stream.URL)
	if err != nil {
		return fmt.Errorf("stream.url is not a valid URL: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("stream.url scheme must be ws or wss, got %q", u.Scheme)
	}

	b, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if b.Scheme != "http" && b.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", b.Scheme)
	}

	if c.Stream.PingInterval < 0 {
		return fmt.Errorf("stream.ping_interval must be >= 0, got %s", c.Stream.PingInterval)
	}
	if c.Stream.ReconnectDelay <= 0 {
		return fmt.Errorf("stream.reconnect_delay must be > 0, got %s", c.Stream.ReconnectDelay)
	}
	if c.Stream.EventBufferSize < 1 {
		return fmt.Errorf("stream.event_buffer_size must be >= 1, got %d", c.Stream.EventBufferSize)
	}

	if c.UI.RefreshInterval <= 0 {
		return fmt.Errorf("ui.refresh_interval must be > 0, got %s", c.UI.RefreshInterval)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
