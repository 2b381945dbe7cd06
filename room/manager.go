package room

import (
	"crypto/rand"
	"math/big"
	"sync"

	"tether/game"
)

// Info is returned by the API for the room list.
type Info struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager tracks live rooms by join code. Rooms start on first join or via
// Create and tear themselves down when the last client leaves.
type Manager struct {
	mu    sync.RWMutex
	tun   game.Tuning
	rooms map[string]*Room
}

// NewManager builds a manager whose rooms all run with the given tuning.
func NewManager(tun game.Tuning) *Manager {
	return &Manager{tun: tun, rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room for code, starting one if needed. An empty
// code is rejected with nil.
func (m *Manager) GetOrCreate(code string) *Room {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r
	}
	return m.startRoomLocked(code)
}

// Create picks an unused join code, starts a room for it, and returns the
// code.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		m.startRoomLocked(code)
		return code
	}
}

// List returns every active room with its player count.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, Info{Code: code, Players: r.NumPlayers()})
	}
	return out
}

func (m *Manager) startRoomLocked(code string) *Room {
	r := New(m.tun)
	r.Code = code
	r.OnEmpty = m.remove
	m.rooms[code] = r
	go r.Run()
	return r
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
	}
}

// codeChars avoids 0/O and 1/I so codes survive being read aloud.
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
