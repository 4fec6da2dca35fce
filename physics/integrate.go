package physics

// Integrate advances every active unlocked point one tick
// v = (pos-old)*friction; old = pos; pos += v + (0, gravity); then clamp to the world edges
// Returns the number of explosive points detonated on the floor
func (w *World) Integrate() int {
	friction := w.phys.Friction
	gravity := w.phys.Gravity
	bounce := w.phys.Bounce
	groundFriction := w.phys.GroundFriction
	floor := w.height - 1
	right := w.width - 1

	detonations := 0
	for i := 0; i < w.pointCount; i++ {
		p := &w.points[i]
		if !p.Active || p.Locked {
			continue
		}

		velX := (p.X - p.OldX) * friction
		velY := (p.Y - p.OldY) * friction

		p.OldX = p.X
		p.OldY = p.Y

		p.X += velX
		p.Y += velY + gravity

		// Reflections go through Old* so the next velocity read picks them up
		if p.Y > floor-p.Radius {
			p.Y = floor - p.Radius
			p.OldY = p.Y + velY*bounce
			p.OldX = p.X - velX*groundFriction

			if p.Explosive {
				p.Active = false
				w.statDetonations.Add(1)
				w.explode(p.X, p.Y, true)
				detonations++
			}
		}

		if p.X < p.Radius {
			p.X = p.Radius
			p.OldX = p.X + velX*bounce
		}

		if p.X > right-p.Radius {
			p.X = right - p.Radius
			p.OldX = p.X + velX*bounce
		}

		if p.Y < p.Radius {
			p.Y = p.Radius
			p.OldY = p.Y + velY*bounce
		}
	}
	return detonations
}
