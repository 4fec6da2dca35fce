package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ragdoll-sandbox/event"
)

// SolveConstraints runs the configured number of relaxation iterations
// Each iteration relaxes every stick once, then runs box containment once
// Returns the number of sticks broken by overstretch
func (w *World) SolveConstraints() int {
	broken := 0
	for iter := 0; iter < w.phys.Iterations; iter++ {
		broken += w.relaxSticks()
		w.ResolveBoxCollisions()
	}
	return broken
}

// relaxSticks performs one pass over all active sticks
func (w *World) relaxSticks() int {
	breakLimit := w.phys.StickBreakFactor
	minSep := w.phys.MinSeparation

	broken := 0
	for i := 0; i < w.stickCount; i++ {
		s := &w.sticks[i]
		if !s.Active {
			continue
		}

		p1 := &w.points[s.P1]
		p2 := &w.points[s.P2]
		if !p1.Active || !p2.Active {
			continue
		}

		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < minSep {
			continue
		}

		if dist > s.Length*breakLimit {
			w.breakStick(i, event.BreakOverstretch)
			broken++
			continue
		}

		diff := (s.Length - dist) / dist
		offsetX := dx * diff * 0.5
		offsetY := dy * diff * 0.5

		if !p1.Locked {
			p1.X -= offsetX
			p1.Y -= offsetY
		}
		if !p2.Locked {
			p2.X += offsetX
			p2.Y += offsetY
		}
	}
	return broken
}

// breakStick deactivates stick i and emits feedback at its midpoint
// Caller guarantees i is in range and active
func (w *World) breakStick(i int, cause event.BreakCause) {
	s := &w.sticks[i]
	s.Active = false

	p1 := &w.points[s.P1]
	p2 := &w.points[s.P2]
	midX := (p1.X + p2.X) / 2
	midY := (p1.Y + p2.Y) / 2

	w.SpawnBreakParticles(midX, midY)
	w.statSticksBroken.Add(1)
	w.emit(event.EventStickBreak, event.StickBreakPayload{
		Stick:   i,
		X:       midX,
		Y:       midY,
		Ragdoll: s.Ragdoll,
		Cause:   cause,
	})
	w.logger.Debug("stick broken", "stick", i, "cause", cause, "ragdoll", s.Ragdoll)
}

// BreakStick permanently deactivates stick i, as game logic does for scripted dismemberment
// Breaking an already broken stick is a no-op
func (w *World) BreakStick(i int) error {
	if i < 0 || i >= w.stickCount {
		return fmt.Errorf("break stick: %w: %d not in [0,%d)", ErrInvalidIndex, i, w.stickCount)
	}
	if !w.sticks[i].Active {
		return nil
	}
	w.breakStick(i, event.BreakScripted)
	return nil
}

// ResolveBoxCollisions pushes every unlocked active point out of every active solid box
// Points already outside all solid boxes are left untouched
func (w *World) ResolveBoxCollisions() {
	for b := 0; b < w.boxCount; b++ {
		box := &w.boxes[b]
		if !box.Active || !box.Solid {
			continue
		}
		for i := 0; i < w.pointCount; i++ {
			p := &w.points[i]
			if !p.Active || p.Locked {
				continue
			}
			w.clampPointToBox(p, box)
		}
	}
}

// clampPointToBox ejects p through the nearest edge of box when its center is strictly inside
// Edge ties resolve left, right, top, bottom in that order
func (w *World) clampPointToBox(p *Point, box *Box) {
	left, right, top, bottom := box.Bounds()
	if p.X <= left || p.X >= right || p.Y <= top || p.Y >= bottom {
		return
	}

	velX := p.X - p.OldX
	velY := p.Y - p.OldY
	bounce := w.phys.Bounce

	distLeft := p.X - left
	distRight := right - p.X
	distTop := p.Y - top
	distBottom := bottom - p.Y

	minDist := distLeft
	edge := 0
	if distRight < minDist {
		minDist = distRight
		edge = 1
	}
	if distTop < minDist {
		minDist = distTop
		edge = 2
	}
	if distBottom < minDist {
		edge = 3
	}

	switch edge {
	case 0:
		p.X = left - p.Radius
		p.OldX = p.X + velX*bounce
	case 1:
		p.X = right + p.Radius
		p.OldX = p.X + velX*bounce
	case 2:
		p.Y = top - p.Radius
		p.OldY = p.Y + velY*bounce
	case 3:
		p.Y = bottom + p.Radius
		p.OldY = p.Y + velY*bounce
	}
}

// ResolvePointCollisions separates every overlapping pair of active points once
// Each unlocked point of a pair moves by half the overlap along the connecting axis; old positions are not touched
func (w *World) ResolvePointCollisions() {
	minSep := w.phys.MinSeparation
	for i := 0; i < w.pointCount; i++ {
		p1 := &w.points[i]
		if !p1.Active {
			continue
		}
		for j := i + 1; j < w.pointCount; j++ {
			p2 := &w.points[j]
			if !p2.Active {
				continue
			}

			dx := p1.X - p2.X
			dy := p1.Y - p2.Y
			minDist := p1.Radius + p2.Radius
			if math.Abs(dx) >= minDist || math.Abs(dy) >= minDist {
				continue
			}

			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= minDist || dist <= minSep {
				continue
			}

			push := (minDist - dist) * 0.5 / dist
			pushX := dx * push
			pushY := dy * push

			if !p1.Locked {
				p1.X += pushX
				p1.Y += pushY
			}
			if !p2.Locked {
				p2.X -= pushX
				p2.Y -= pushY
			}
		}
	}
}
