package protocol

// Messages sent by clients.

// Hello opens a session. Name is optional.
type Hello struct {
	V    int    `json:"v"`
	Name string `json:"name,omitempty"`
}

// Input carries the pilot's pointer state plus the size of the client's
// world-space viewport. The server centers the spawn/despawn region on the
// rope's anchor using these dimensions; spectator inputs are ignored.
type Input struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Drag  bool    `json:"drag,omitempty"`
	ViewW float64 `json:"viewW,omitempty"`
	ViewH float64 `json:"viewH,omitempty"`
}
