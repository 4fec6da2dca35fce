package physics

import (
	"math"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

// Explode applies a single radial impulse centered at (x, y)
// Velocity is injected through old positions; current positions are not moved
func (w *World) Explode(x, y float64) {
	w.explode(x, y, false)
}

func (w *World) explode(x, y float64, detonation bool) {
	radius := w.blast.Radius
	power := w.blast.Power
	minDist := w.blast.MinDistance

	for i := 0; i < w.pointCount; i++ {
		p := &w.points[i]
		if !p.Active {
			continue
		}

		dx := p.X - x
		dy := p.Y - y
		dist := math.Sqrt(dx*dx + dy*dy)

		if dist < radius && dist > minDist {
			force := (radius - dist) / dist * power
			p.OldX -= dx * force
			p.OldY -= dy * force
		}

		if p.Ragdoll && dist < w.blast.UnlockRadius {
			p.Locked = false
		}
	}

	wallRange := radius * w.blast.WallFactor
	for i := 0; i < w.boxCount; i++ {
		b := &w.boxes[i]
		if !b.Active || !b.Wall || b.Height <= w.blast.WallMinHeight {
			continue
		}
		if vmath.Dist(b.X, b.Y, x, y) < wallRange {
			b.Active = false
			w.logger.Debug("wall destroyed", "box", i)
		}
	}

	stickRange := radius * w.blast.StickFactor
	for i := 0; i < w.stickCount; i++ {
		s := &w.sticks[i]
		if !s.Active || s.Ragdoll {
			continue
		}
		mid := vmath.V2Mid(w.points[s.P1].Pos(), w.points[s.P2].Pos())
		if vmath.Dist(mid.X, mid.Y, x, y) < stickRange {
			w.breakStick(i, event.BreakExplosion)
		}
	}

	w.SpawnExplosionParticles(x, y)
	w.statExplosions.Add(1)
	w.emit(event.EventExplosion, event.ExplosionPayload{X: x, Y: y, Detonation: detonation})
	w.logger.Debug("explosion", "x", x, "y", y, "detonation", detonation)
}
