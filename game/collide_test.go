package game

import (
	"math"
	"math/rand"
	"testing"
)

func isFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func TestSeparateIsSymmetric(t *testing.T) {
	a := Chaser{Pos: Vec2{}, Radius: 10}
	b := Chaser{Pos: Vec2{X: 12}, Radius: 10}
	a0, b0 := a.Pos, b.Pos

	separate(&a, &b, 4)

	da := a.Pos.Sub(a0)
	db := b.Pos.Sub(b0)
	if da.X != -db.X || da.Y != -db.Y {
		t.Fatalf("corrections not mirrored: a moved %+v, b moved %+v", da, db)
	}
	if a.Pos.Dist(b.Pos) <= a0.Dist(b0) {
		t.Fatalf("overlapping pair did not separate: %f -> %f", a0.Dist(b0), a.Pos.Dist(b.Pos))
	}
}

func TestSeparateScalesWithSubsteps(t *testing.T) {
	// One substep applies half the overlap per body; four substeps apply an
	// eighth. The damping keeps per-substep resolution from over-correcting.
	overlap := 8.0
	for _, substeps := range []int{1, 4} {
		a := Chaser{Pos: Vec2{}, Radius: 10}
		b := Chaser{Pos: Vec2{X: 20 - overlap}, Radius: 10}
		separate(&a, &b, substeps)
		want := overlap / float64(substeps) / 2
		if got := -a.Pos.X; math.Abs(got-want) > 1e-9 {
			t.Fatalf("substeps=%d: push = %f, want %f", substeps, got, want)
		}
	}
}

func TestSeparateSkipsCoincidentCenters(t *testing.T) {
	a := Chaser{Pos: Vec2{X: 3, Y: 3}, Radius: 10}
	b := Chaser{Pos: Vec2{X: 3, Y: 3}, Radius: 15}
	separate(&a, &b, 4)
	if a.Pos != (Vec2{X: 3, Y: 3}) || b.Pos != (Vec2{X: 3, Y: 3}) {
		t.Fatalf("coincident pair was moved: a=%+v b=%+v", a.Pos, b.Pos)
	}
}

func TestHazardPolicyReportsRopeContact(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 40}, 4, 4)
	clear := []Chaser{{Pos: Vec2{X: 20, Y: 300}, Radius: 10}}
	touching := []Chaser{{Pos: Vec2{X: 20, Y: 5}, Radius: 10}}

	if Resolve(&r, clear, 4, ContactHazard) {
		t.Fatalf("distant chaser reported as rope contact")
	}
	if !Resolve(&r, touching, 4, ContactHazard) {
		t.Fatalf("overlapping chaser not reported as rope contact")
	}
}

func TestPushPolicyMovesChaserOffRope(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 40}, 4, 4)
	chasers := []Chaser{{Pos: Vec2{X: 20, Y: 5}, Radius: 10}}
	d0 := chasers[0].Pos.Dist(Vec2{X: 20})

	if Resolve(&r, chasers, 4, ContactPush) {
		t.Fatalf("push policy must never report a hit")
	}
	if chasers[0].Pos.Dist(Vec2{X: 20}) <= d0 {
		t.Fatalf("chaser was not pushed away from the rope")
	}
	if r.Points[0] != (Vec2{}) {
		t.Fatalf("anchor displaced by collision: %+v", r.Points[0])
	}
}

func TestResolveNeverProducesNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := NewRope(Vec2{}, Vec2{X: 40}, 5, 4)

	for trial := 0; trial < 10000; trial++ {
		chasers := make([]Chaser, 3)
		for i := range chasers {
			p := Vec2{rng.Float64()*60 - 10, rng.Float64()*40 - 20}
			if trial%7 == 0 {
				// Force exact coincidence with a joint.
				p = r.Points[rng.Intn(len(r.Points))]
			}
			if trial%11 == 0 && i > 0 {
				// Force exact coincidence between chasers.
				p = chasers[0].Pos
			}
			chasers[i] = Chaser{Pos: p, Prev: p, Radius: 5 + rng.Float64()*15}
		}

		Resolve(&r, chasers, 4, ContactPush)

		for i, c := range chasers {
			if !isFinite(c.Pos) {
				t.Fatalf("trial %d: chaser %d position is not finite: %+v", trial, i, c.Pos)
			}
		}
		for i, p := range r.Points {
			if !isFinite(p) {
				t.Fatalf("trial %d: joint %d position is not finite: %+v", trial, i, p)
			}
		}
	}
}
