package connection

import (
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected  = errors.New("not connected")
	ErrAlreadyClosed = errors.New("already closed")
	ErrStopped       = errors.New("manager stopped")
	ErrTerminated    = errors.New("session terminated: authentication required")
)

// State is the connection manager's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed     // retryable; a reconnect may be pending
	StateTerminated // auth failure; no automatic reconnection
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Status is a point-in-time view of the manager for consumers. Ordinary
// disconnects surface only as State; Err is set for dial failures and the
// terminal auth state.
type Status struct {
	State State
	Err   error
}

// ClientConfig configures a single WebSocket client.
type ClientConfig struct {
	URL              string
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration // Write deadline for sends
	BufferSize       int           // Message channel buffer size
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		BufferSize:       256,
	}
}

// ManagerConfig configures the connection manager.
type ManagerConfig struct {
	URL              string
	PingInterval     time.Duration // Outbound liveness frame cadence while open
	ReconnectDelay   time.Duration // Fixed delay between retry attempts
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	EventBufferSize  int // Buffer size for the decoded event channel
}

// DefaultManagerConfig returns sensible defaults.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		PingInterval:     25 * time.Second,
		ReconnectDelay:   3 * time.Second,
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		EventBufferSize:  256,
	}
}
