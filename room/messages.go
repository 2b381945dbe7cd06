package room

import "tether/protocol"

// Conn is the transport a room talks back through; the network layer wraps
// a websocket in one, tests use fakes.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join is issued once after the hello handshake.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	Pilot    bool
}

// Input is the latest pointer state for a player. Only the pilot's is acted
// on; the room drops the rest.
type Input struct {
	PlayerID string
	Input    protocol.Input
}

// Leave is issued on disconnect.
type Leave struct {
	PlayerID string
}
