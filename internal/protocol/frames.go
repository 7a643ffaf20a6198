package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/kitedesk/kitedesk/internal/model"
)

// Frame type tags used on the wire.
const (
	TypeInitialData = "initial_data"
	TypeTickUpdate  = "tick_update"
	TypeError       = "error"
	TypeHeartbeat   = "heartbeat"
	TypePong        = "pong"
	TypePing        = "ping"
)

// CodeAuthRequired is the error code that marks a session as dead until the
// user logs in again.
const CodeAuthRequired = "AUTH_REQUIRED"

// Event is a decoded inbound frame. The concrete types are InitialData,
// TickUpdate, ServerError, and Heartbeat; nothing else implements it.
type Event interface {
	isEvent()
}

// InitialData is a bulk snapshot. Either payload may be absent; a present
// payload replaces the corresponding local state wholesale.
type InitialData struct {
	Watchlists []model.Watchlist // nil when the frame carried none
	Ticks      []model.Tick      // nil when the frame carried none
}

// TickUpdate carries a partial set of instruments to merge.
type TickUpdate struct {
	Ticks []model.Tick
}

// ServerError is an error-typed frame from the backend.
type ServerError struct {
	Code    string
	Message string
}

// AuthRequired reports whether this error terminates the session.
func (e ServerError) AuthRequired() bool {
	return e.Code == CodeAuthRequired
}

// Heartbeat covers the ignorable heartbeat and pong acknowledgments.
type Heartbeat struct{}

func (InitialData) isEvent() {}
func (TickUpdate) isEvent()  {}
func (ServerError) isEvent() {}
func (Heartbeat) isEvent()   {}

// envelope is the superset of all inbound frame shapes.
type envelope struct {
	Type       string            `json:"type"`
	Watchlists []model.Watchlist `json:"watchlists"`
	Data       []model.Tick      `json:"data"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
}

// Decode parses one inbound frame. Unknown frame types return (nil, nil) so
// the stream stays forward-compatible; malformed JSON returns an error.
func Decode(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	switch env.Type {
	case TypeInitialData:
		return InitialData{Watchlists: env.Watchlists, Ticks: env.Data}, nil
	case TypeTickUpdate:
		return TickUpdate{Ticks: env.Data}, nil
	case TypeError:
		return ServerError{Code: env.Code, Message: env.Message}, nil
	case TypeHeartbeat, TypePong:
		return Heartbeat{}, nil
	default:
		return nil, nil
	}
}

// Ping returns the outbound liveness frame.
func Ping() []byte {
	return []byte(`{"type":"ping"}`)
}
