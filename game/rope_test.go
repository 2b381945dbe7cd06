package game

import (
	"math"
	"testing"
)

func maxSegmentError(r *Rope) float64 {
	worst := 0.0
	for i := 0; i < len(r.Points)-1; i++ {
		err := math.Abs(r.Points[i].Dist(r.Points[i+1])-r.SegmentLength) / r.SegmentLength
		if err > worst {
			worst = err
		}
	}
	return worst
}

func TestConstrainConvergesToSegmentLength(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 100}, 8, 4)

	// Perturb everything but the anchor.
	for i := 1; i < len(r.Points); i++ {
		r.Points[i].X += float64(i%3) * 7
		r.Points[i].Y += float64(i%2)*9 - 4
		r.Prev[i] = r.Points[i]
	}

	for n := 0; n < 8; n++ {
		r.Constrain(5, 1.2)
	}

	if err := maxSegmentError(&r); err > 0.02 {
		t.Fatalf("segment error after relaxation = %f, want <= 0.02", err)
	}
}

func TestAnchorNeverMovesWithoutDrag(t *testing.T) {
	r := NewRope(Vec2{X: 3, Y: -2}, Vec2{X: 103, Y: -2}, 10, 4)
	anchor := r.Points[0]

	for i := 1; i < len(r.Points); i++ {
		r.Points[i].Y += 15
	}

	for n := 0; n < 50; n++ {
		r.Integrate(Vec2{Y: 30}, 1.0/160)
		r.Constrain(5, 1.2)
	}

	if r.Points[0] != anchor {
		t.Fatalf("anchor moved: got %+v, want %+v", r.Points[0], anchor)
	}
}

func TestNewRopeClampsJointCount(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 10}, 1, 4)
	if len(r.Points) != 2 {
		t.Fatalf("joint count = %d, want 2", len(r.Points))
	}
}

func TestGrowAddsJointAndShrinksSegments(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 40}, 4, 4)
	segBefore := r.SegmentLength

	// Same span, one more joint: segments must get strictly shorter.
	r.Grow(5, Vec2{X: 40})

	if len(r.Points) != 5 || len(r.Prev) != 5 {
		t.Fatalf("joint count after grow = %d/%d, want 5/5", len(r.Points), len(r.Prev))
	}
	if r.SegmentLength >= segBefore {
		t.Fatalf("segment length %f did not shrink from %f", r.SegmentLength, segBefore)
	}
	for i := range r.Points {
		if r.Prev[i] != r.Points[i] {
			t.Fatalf("grow must reset prev positions; joint %d has momentum", i)
		}
	}
}

func TestGrowRejectsDegenerateCount(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 40}, 4, 4)
	r.Grow(1, Vec2{X: 40})
	if len(r.Points) != 4 {
		t.Fatalf("degenerate grow changed joint count to %d", len(r.Points))
	}
}

func TestMidpointsAreSegmentCenters(t *testing.T) {
	r := NewRope(Vec2{}, Vec2{X: 30}, 4, 4)
	mids := r.Midpoints()
	if len(mids) != 3 {
		t.Fatalf("midpoint count = %d, want 3", len(mids))
	}
	want := []float64{5, 15, 25}
	for i, m := range mids {
		if math.Abs(m.X-want[i]) > 1e-9 || m.Y != 0 {
			t.Fatalf("midpoint %d = %+v, want (%f, 0)", i, m, want[i])
		}
	}
}

func TestStraightChainStaysStraight(t *testing.T) {
	// 4 joints from (0,0) to (40,0), anchor pinned, no drag, no gravity:
	// after 60 ticks of substepped relaxation the chain must still lie on
	// the x axis with its total length held.
	r := NewRope(Vec2{}, Vec2{X: 40}, 4, 4)

	for tick := 0; tick < 60; tick++ {
		for sub := 0; sub < 5; sub++ {
			r.Integrate(Vec2{}, (1.0/40)/5)
			r.Constrain(5, 1.2)
		}
	}

	total := 0.0
	for i := 0; i < len(r.Points)-1; i++ {
		total += r.Points[i].Dist(r.Points[i+1])
	}
	if math.Abs(total-40) > 0.8 {
		t.Fatalf("total length drifted to %f, want 40 +/- 0.8", total)
	}
	for i, p := range r.Points {
		if math.Abs(p.Y) > 1e-6 {
			t.Fatalf("joint %d left the axis: y = %g", i, p.Y)
		}
	}
}
