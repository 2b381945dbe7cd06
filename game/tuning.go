package game

// ContactPolicy selects what happens when a chaser touches the rope.
type ContactPolicy string

const (
	// ContactHazard ends the run on any rope contact.
	ContactHazard ContactPolicy = "hazard"
	// ContactPush physically separates chasers from the rope instead.
	ContactPush ContactPolicy = "push"
)

// Tuning holds every gameplay parameter. Servers decode a TOML file over
// DefaultTuning to adjust a deployment without recompiling.
type Tuning struct {
	JointCount int     // rope joints, anchor included
	RopeLength float64 // initial anchor-to-end distance
	Thickness  float64 // rope visual thickness, also pads joint contacts
	Gravity    Vec2    // constant acceleration, zero by default
	Substeps   int     // integration substeps per tick
	Iterations int     // constraint passes per substep
	Softness   float64 // constraint divisor; 1.0 would be fully rigid
	DragLerp   float64 // anchor-toward-pointer fraction per substep

	SeekSpeed     float64 // chaser steering speed, units/s
	SeekDampDiv   float64 // chaser velocity divided by this each step
	RadiusMin     float64
	RadiusMax     float64
	SpawnMargin   float64 // how far outside the view edges chasers appear
	DespawnMargin float64 // view expansion before a chaser counts as gone
	SpawnDelay    float64 // seconds between spawns at the start of a run
	DelayDecay    float64 // spawn delay shrinks by this much per second
	DelayFloor    float64 // spawn delay never goes below this

	GrowEvery   int           // rope gains a joint every this many points
	RopeContact ContactPolicy // hazard or push
	DefaultDt   float64       // tick duration when the input carries none
	View        Rect          // fallback viewport when the input carries none
}

func DefaultTuning() Tuning {
	return Tuning{
		JointCount: 12,
		RopeLength: 100,
		Thickness:  4,
		Substeps:   4,
		Iterations: 5,
		Softness:   1.2,
		DragLerp:   0.3,

		SeekSpeed:     40,
		SeekDampDiv:   1.5,
		RadiusMin:     10,
		RadiusMax:     20,
		SpawnMargin:   30,
		DespawnMargin: 50,
		SpawnDelay:    2.0,
		DelayDecay:    0.02,
		DelayFloor:    0.4,

		GrowEvery:   3,
		RopeContact: ContactHazard,
		DefaultDt:   1.0 / 40,
		View: Rect{
			Min: Vec2{-400, -300},
			Max: Vec2{400, 300},
		},
	}
}
