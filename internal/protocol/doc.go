// Package protocol defines the JSON frame types exchanged with the backend's
// push connection and decodes inbound frames into a closed set of events.
//
// Inbound frames carry a "type" tag: initial_data, tick_update, error,
// heartbeat, pong. Unknown types decode to nil and are ignored by callers;
// malformed payloads return an error so the connection layer can log and
// drop them without closing the connection.
package protocol
