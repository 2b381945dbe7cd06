package game

// Step advances the simulation by one tick. The order inside a tick is fixed:
// substeps (each one integrates the rope, relaxes its constraints, applies
// drag, moves every chaser, then resolves contacts), then spawn, despawn and
// scoring, rope growth on score milestones, and finally the spawn-delay
// ramp. Once GameOver latches, Step is a no-op; there is no way back to a
// running state.
func Step(s *State, in Input) {
	if s.GameOver {
		return
	}

	dt := in.Dt
	if dt <= 0 {
		dt = s.Tun.DefaultDt
	}
	view := in.View
	if view.IsZero() {
		view = s.Tun.View
	}

	if in.Drag && !s.DragActive {
		s.DragActive = true
		s.DragIndex = 0 // always the anchor
	} else if !in.Drag && s.DragActive {
		s.DragActive = false
	}

	s.SpawnTimer += dt

	substeps := s.Tun.Substeps
	if substeps < 1 {
		substeps = 1
	}
	sdt := dt / float64(substeps)

	for i := 0; i < substeps; i++ {
		s.Rope.Integrate(s.Tun.Gravity, sdt)
		s.Rope.Constrain(s.Tun.Iterations, s.Tun.Softness)

		if s.DragActive {
			p := s.Rope.Points[s.DragIndex]
			s.Rope.Points[s.DragIndex] = p.Lerp(in.Pointer, s.Tun.DragLerp)
		}

		target := s.Rope.Points[0]
		for ci := range s.Chasers {
			s.Chasers[ci].Seek(target, s.Tun.SeekSpeed, s.Tun.SeekDampDiv, sdt)
		}

		if Resolve(&s.Rope, s.Chasers, substeps, s.Tun.RopeContact) {
			s.GameOver = true
			break
		}
	}

	if !s.GameOver {
		if s.SpawnTimer >= s.SpawnDelay {
			s.Chasers = append(s.Chasers, spawnChaser(s.rng, view, s.Tun))
			s.SpawnTimer = 0
		}

		var removed int
		s.Chasers, removed = despawnOutside(s.Chasers, view, s.Tun.DespawnMargin)
		if removed > 0 {
			before := s.Score
			s.Score += removed
			if s.Tun.GrowEvery > 0 {
				for n := s.Score/s.Tun.GrowEvery - before/s.Tun.GrowEvery; n > 0; n-- {
					growRope(&s.Rope)
				}
			}
		}

		// The floor only bounds the decay; a delay set below it from the
		// outside is a chosen cadence and stays where it was put.
		if s.SpawnDelay > s.Tun.DelayFloor {
			s.SpawnDelay -= s.Tun.DelayDecay * dt
			if s.SpawnDelay < s.Tun.DelayFloor {
				s.SpawnDelay = s.Tun.DelayFloor
			}
		}
	}

	s.Tick++
}

// growRope extends the chain by one joint, placing the new end one segment
// length past the current one along the chain's overall direction.
func growRope(r *Rope) {
	dir, ok := r.End().Sub(r.Points[0]).Normalize()
	if !ok {
		// Fully collapsed chain; grow along a fixed axis rather than not
		// at all.
		dir = Vec2{1, 0}
	}
	end := r.End().Add(dir.Scale(r.SegmentLength))
	r.Grow(len(r.Points)+1, end)
}
