package room

import (
	"fmt"
	"time"

	"tether/game"
	"tether/protocol"
)

// Room owns one run of the simulation and every connection watching it. All
// state is confined to the Run goroutine; the outside world only ever talks
// to the Inbox channel. The first client to join becomes the pilot and is
// the only one whose drag input reaches the rope.
type Room struct {
	Inbox chan any

	tickHz         int
	broadcastEvery int
	state          *game.State
	clients        map[string]Conn
	names          map[string]string
	pilotID        string
	pilotInput     protocol.Input
	nextID         int
	quit           chan struct{}

	Code    string            // join code, e.g. "ABC234"
	OnEmpty func(code string) // called when the last client leaves
}

func New(tun game.Tuning) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery < 1 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		state:          game.NewWithTuning(tun, time.Now().UnixNano()),
		clients:        make(map[string]Conn),
		names:          make(map[string]string),
		nextID:         1,
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// Done is closed once the room stops accepting commands. Senders select on
// it so a command aimed at a dead room cannot strand its goroutine.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			r.drainInbox()
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			game.Step(r.state, r.tickInput())
			// Once the run ends the tick counter freezes, so the modulo
			// alone could skip the terminal snapshot forever.
			if r.state.Tick%r.broadcastEvery == 0 || r.state.GameOver {
				r.broadcastState()
			}
		}
	}
}

// tickInput translates the pilot's latest wire input into a simulation
// input. The spawn/despawn region is the pilot's viewport centered on the
// anchor; with no pilot or no reported viewport, the simulation falls back
// to its tuned default.
func (r *Room) tickInput() game.Input {
	in := game.Input{
		Drag:    r.pilotInput.Drag,
		Pointer: game.Vec2{X: r.pilotInput.X, Y: r.pilotInput.Y},
	}
	if r.pilotInput.ViewW > 0 && r.pilotInput.ViewH > 0 {
		anchor := r.state.Rope.Points[0]
		hw, hh := r.pilotInput.ViewW/2, r.pilotInput.ViewH/2
		in.View = game.Rect{
			Min: game.Vec2{X: anchor.X - hw, Y: anchor.Y - hh},
			Max: game.Vec2{X: anchor.X + hw, Y: anchor.Y + hh},
		}
	}
	return in
}

// drainInbox resolves whatever was queued when the room shut down. A Join
// that raced the last leave gets a zero JoinResult and its connection
// closed, so the joining handler sees a refusal instead of waiting on a
// reply that will never come.
func (r *Room) drainInbox() {
	for {
		select {
		case cmd := <-r.Inbox:
			if j, ok := cmd.(Join); ok {
				select {
				case j.Reply <- JoinResult{}:
				default:
				}
				_ = j.Conn.Close()
			}
		default:
			return
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		playerID := fmt.Sprintf("p%d", r.nextID)
		r.nextID++
		r.clients[playerID] = c.Conn
		name := c.Name
		if name == "" {
			name = playerID
		}
		r.names[playerID] = name
		if r.pilotID == "" {
			r.pilotID = playerID
		}
		c.Reply <- JoinResult{PlayerID: playerID, Pilot: playerID == r.pilotID}
		r.sendStateTo(c.Conn)
	case Input:
		if c.PlayerID != r.pilotID {
			return
		}
		r.pilotInput = c.Input
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) handleLeave(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
		delete(r.clients, playerID)
	}
	delete(r.names, playerID)

	if playerID == r.pilotID {
		// Hand the rope to any remaining client, drag released.
		r.pilotID = ""
		r.pilotInput = protocol.Input{}
		for id := range r.clients {
			r.pilotID = id
			break
		}
	}

	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	// A failed send is treated as a disconnect, so pilot handoff and
	// on-empty teardown run the same path as an explicit leave.
	for _, id := range failed {
		r.handleLeave(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	s := r.state
	snap := protocol.State{
		Tick:      s.Tick,
		Score:     s.Score,
		Pilot:     r.names[r.pilotID],
		GameOver:  s.GameOver,
		Thickness: s.Rope.Thickness,
		Joints:    make([]protocol.PointSnapshot, len(s.Rope.Points)),
		Chasers:   make([]protocol.ChaserSnapshot, len(s.Chasers)),
	}
	for i, p := range s.Rope.Points {
		snap.Joints[i] = protocol.PointSnapshot{X: p.X, Y: p.Y}
	}
	for i, c := range s.Chasers {
		snap.Chasers[i] = protocol.ChaserSnapshot{X: c.Pos.X, Y: c.Pos.Y, R: c.Radius, Hue: c.Hue}
	}
	return snap
}
