package game

// Rope is a chain of Verlet point masses. Points[0] is the anchor: it is
// never integrated and never corrected by the constraint solver, only moved
// by drag input. Prev mirrors Points one step behind so velocity is implied
// rather than stored.
type Rope struct {
	Points        []Vec2
	Prev          []Vec2
	SegmentLength float64
	Thickness     float64
}

// NewRope lays count joints evenly between start and end. Counts below 2 are
// clamped to 2; a segment needs two endpoints.
func NewRope(start, end Vec2, count int, thickness float64) Rope {
	if count < 2 {
		count = 2
	}
	seg := start.Dist(end) / float64(count-1)
	dir, ok := end.Sub(start).Normalize()
	if !ok {
		dir = Vec2{1, 0}
	}

	points := make([]Vec2, count)
	for i := range points {
		points[i] = start.Add(dir.Scale(seg * float64(i)))
	}
	prev := make([]Vec2, count)
	copy(prev, points)

	return Rope{
		Points:        points,
		Prev:          prev,
		SegmentLength: seg,
		Thickness:     thickness,
	}
}

// Integrate advances every joint except the anchor by one Verlet step.
func (r *Rope) Integrate(gravity Vec2, dt float64) {
	for i := 1; i < len(r.Points); i++ {
		cur := r.Points[i]
		vel := cur.Sub(r.Prev[i])
		next := cur.Add(vel).Add(gravity.Scale(dt * dt))
		r.Prev[i] = cur
		r.Points[i] = next
	}
}

// Constrain runs the given number of relaxation passes over every adjacent
// joint pair, nudging each pair toward SegmentLength. The correction is
// split between the two joints except at the anchor, which absorbs nothing.
// Softness above 1 leaves a little slack per pass; stacking passes and
// substeps is what makes the chain stiff.
func (r *Rope) Constrain(iterations int, softness float64) {
	if softness <= 0 {
		softness = 1
	}
	for n := 0; n < iterations; n++ {
		for i := 0; i < len(r.Points)-1; i++ {
			delta := r.Points[i+1].Sub(r.Points[i])
			dir, ok := delta.Normalize()
			if !ok {
				continue
			}
			diff := r.SegmentLength - delta.Len()
			correction := dir.Scale(diff / softness / 2)
			if i != 0 {
				r.Points[i] = r.Points[i].Sub(correction)
			}
			r.Points[i+1] = r.Points[i+1].Add(correction)
		}
	}
}

// Midpoints returns the center of every segment, freshly computed. These are
// derived values for collision checks, never state.
func (r *Rope) Midpoints() []Vec2 {
	mids := make([]Vec2, len(r.Points)-1)
	for i := range mids {
		mids[i] = r.Points[i].Add(r.Points[i+1]).Scale(0.5)
	}
	return mids
}

// End returns the free end of the chain.
func (r *Rope) End() Vec2 {
	return r.Points[len(r.Points)-1]
}

// Grow rebuilds the chain with count joints evenly spaced from the current
// anchor toward end, and recomputes SegmentLength from the new span. Prev is
// reset to Points, so any in-flight momentum is discarded: growth visibly
// snaps the rope straight. That is the accepted trade for keeping growth a
// single atomic rebuild. Counts below 2 are ignored.
func (r *Rope) Grow(count int, end Vec2) {
	if count < 2 {
		return
	}
	*r = NewRope(r.Points[0], end, count, r.Thickness)
}
