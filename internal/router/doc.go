// Package router consumes decoded frames from the connection manager and
// applies them to the tick store and watchlist collection. It is the routing
// half of the message dispatcher; decoding lives in package protocol.
package router
