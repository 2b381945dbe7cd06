package game

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Normalize returns the unit vector and true, or the zero vector and false
// when the length is zero. Callers must skip whatever correction they were
// about to apply in the false case; dividing through anyway would put NaNs
// into position state.
func (v Vec2) Normalize() (Vec2, bool) {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Lerp moves v toward o by fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned region, used for the viewport and spawn bounds.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Expand grows the rect by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - m, r.Min.Y - m},
		Max: Vec2{r.Max.X + m, r.Max.Y + m},
	}
}

// IsZero reports whether the rect carries no area at all, which is how an
// absent viewport is represented on Input.
func (r Rect) IsZero() bool {
	return r.Min == r.Max
}

// ContainsCircle reports whether the circle at c with radius rad overlaps the
// rect at least partially.
func (r Rect) ContainsCircle(c Vec2, rad float64) bool {
	return c.X+rad >= r.Min.X && c.X-rad <= r.Max.X &&
		c.Y+rad >= r.Min.Y && c.Y-rad <= r.Max.Y
}
