package protocol

import "encoding/json"

const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgWelcome = "welcome"
	MsgState   = "state"
)

const (
	// SimTickHz is the authoritative simulation rate.
	SimTickHz = 40
	// BroadcastHz is how often snapshots go out; it must divide SimTickHz.
	BroadcastHz = 20
)

// Envelope wraps every message on the wire: a type tag and the raw payload
// bytes, decoded in a second pass once the tag is known.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}
