package game

// Resolve handles one substep's worth of contacts: chaser against rope joint,
// chaser against segment interior, and chaser against chaser. It returns true
// when a rope contact occurred under the hazard policy; under the push policy
// it always returns false.
//
// Every correction is divided by the substep count because Resolve runs once
// per substep: applying the full separation each substep over-corrects and
// the field starts to jitter. Pairs whose centers coincide are skipped
// outright, since there is no direction to separate them along.
func Resolve(r *Rope, chasers []Chaser, substeps int, policy ContactPolicy) bool {
	if substeps < 1 {
		substeps = 1
	}

	for ci := range chasers {
		if ropeContact(r, &chasers[ci], substeps, policy) {
			return true
		}
	}

	for i := 0; i < len(chasers); i++ {
		for j := i + 1; j < len(chasers); j++ {
			separate(&chasers[i], &chasers[j], substeps)
		}
	}
	return false
}

// ropeContact checks one chaser against every joint and every segment
// midpoint. Joint contact distance is padded by the rope thickness; midpoint
// contact uses half a segment length so the interior of each segment is
// covered, not just its endpoints.
func ropeContact(r *Rope, c *Chaser, substeps int, policy ContactPolicy) bool {
	for i, p := range r.Points {
		contact := c.Radius + r.Thickness
		d := c.Pos.Dist(p)
		if d >= contact {
			continue
		}
		if policy == ContactHazard {
			return true
		}
		dir, ok := c.Pos.Sub(p).Normalize()
		if !ok {
			continue
		}
		push := dir.Scale((contact - d) / float64(substeps) / 2)
		c.Pos = c.Pos.Add(push)
		if i != 0 {
			// The anchor is driven by drag alone, so the joint side of an
			// anchor contact is dropped and the chaser takes the whole push.
			r.Points[i] = r.Points[i].Sub(push)
		}
	}

	for _, mid := range r.Midpoints() {
		contact := c.Radius + r.SegmentLength/2
		d := c.Pos.Dist(mid)
		if d >= contact {
			continue
		}
		if policy == ContactHazard {
			return true
		}
		dir, ok := c.Pos.Sub(mid).Normalize()
		if !ok {
			continue
		}
		// Midpoints are derived, not owned, so only the chaser moves.
		c.Pos = c.Pos.Add(dir.Scale((contact - d) / float64(substeps) / 2))
	}
	return false
}

// separate pushes two overlapping chasers apart symmetrically.
func separate(a, b *Chaser, substeps int) {
	contact := a.Radius + b.Radius
	d := a.Pos.Dist(b.Pos)
	if d >= contact {
		return
	}
	dir, ok := b.Pos.Sub(a.Pos).Normalize()
	if !ok {
		return
	}
	push := dir.Scale((contact - d) / float64(substeps) / 2)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)
}
