// Package connection implements the push-connection manager.
//
// The manager:
//   - Owns one WebSocket connection to the backend's /ws endpoint
//   - Sends an application-level ping frame every 25s while open
//   - Retries dropped connections on a fixed 3s interval, indefinitely
//   - Treats an AUTH_REQUIRED error frame as terminal: no automatic
//     reconnection until Reconnect() is called explicitly
//   - Emits decoded frames to the Message Router
package connection
