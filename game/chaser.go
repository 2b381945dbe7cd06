package game

import "math/rand"

// Chaser is a circular body that homes in on the rope's anchor. Like rope
// joints it carries its previous position instead of a velocity.
type Chaser struct {
	Pos    Vec2
	Prev   Vec2
	Radius float64
	Hue    uint8 // cosmetic, for the frontends
}

// Seek advances the chaser one Verlet step toward target. Inherited velocity
// is damped by division so a chaser can be knocked around by collisions but
// settles back onto its pursuit line. A chaser sitting exactly on the target
// keeps its velocity and gets no steering this step.
func (c *Chaser) Seek(target Vec2, speed, dampDiv, dt float64) {
	if dampDiv <= 0 {
		dampDiv = 1
	}
	vel := c.Pos.Sub(c.Prev).Scale(1 / dampDiv)
	c.Prev = c.Pos
	next := c.Pos.Add(vel)
	if dir, ok := target.Sub(c.Pos).Normalize(); ok {
		next = next.Add(dir.Scale(speed * dt))
	}
	c.Pos = next
}

// spawnChaser places a new chaser just outside a random edge of the view.
// Spawning on the boundary rather than inside it gives the seek behavior
// somewhere to travel from.
func spawnChaser(rng *rand.Rand, view Rect, tun Tuning) Chaser {
	var pos Vec2
	switch rng.Intn(4) {
	case 0: // left
		pos = Vec2{view.Min.X - tun.SpawnMargin, view.Min.Y + rng.Float64()*view.H()}
	case 1: // right
		pos = Vec2{view.Max.X + tun.SpawnMargin, view.Min.Y + rng.Float64()*view.H()}
	case 2: // top
		pos = Vec2{view.Min.X + rng.Float64()*view.W(), view.Min.Y - tun.SpawnMargin}
	default: // bottom
		pos = Vec2{view.Min.X + rng.Float64()*view.W(), view.Max.Y + tun.SpawnMargin}
	}
	radius := tun.RadiusMin + rng.Float64()*(tun.RadiusMax-tun.RadiusMin)
	return Chaser{
		Pos:    pos,
		Prev:   pos,
		Radius: radius,
		Hue:    uint8(rng.Intn(256)),
	}
}

// despawnOutside drops every chaser whose circle lies entirely outside the
// view expanded by margin, compacting in place, and reports how many were
// removed. Filtering into the same backing array avoids index bookkeeping
// while iterating.
func despawnOutside(chasers []Chaser, view Rect, margin float64) ([]Chaser, int) {
	bounds := view.Expand(margin)
	kept := chasers[:0]
	for _, c := range chasers {
		if bounds.ContainsCircle(c.Pos, c.Radius) {
			kept = append(kept, c)
		}
	}
	return kept, len(chasers) - len(kept)
}
