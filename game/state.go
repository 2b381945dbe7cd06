package game

import "math/rand"

// State is the authoritative truth for one run. It is owned by a single
// goroutine (the room loop, or a frontend's update callback) and mutated in
// place by Step; nothing in here is safe to share.
type State struct {
	Tick    int
	Rope    Rope
	Chasers []Chaser

	Score      int
	SpawnTimer float64
	SpawnDelay float64

	DragActive bool
	DragIndex  int

	GameOver bool

	Tun Tuning
	rng *rand.Rand
}

// Input is the per-tick snapshot of everything outside the simulation.
type Input struct {
	Dt      float64 // zero means Tuning.DefaultDt
	Drag    bool    // level-triggered; edges are detected inside Step
	Pointer Vec2    // drag target, only read while Drag is set
	View    Rect    // viewport for spawn/despawn; zero means Tuning.View
}

// New builds a fresh run with default tuning. The seed fixes the spawn
// stream, so two runs fed identical inputs play out identically.
func New(seed int64) *State {
	return NewWithTuning(DefaultTuning(), seed)
}

func NewWithTuning(tun Tuning, seed int64) *State {
	start := Vec2{}
	end := Vec2{X: tun.RopeLength}
	return &State{
		Rope:       NewRope(start, end, tun.JointCount, tun.Thickness),
		SpawnDelay: tun.SpawnDelay,
		Tun:        tun,
		rng:        rand.New(rand.NewSource(seed)),
	}
}
