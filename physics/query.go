package physics

import (
	"fmt"

	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

// FindNearestPoint returns the closest active point strictly within maxDist of (x, y)
// Returns InvalidIndex when none qualifies
func (w *World) FindNearestPoint(x, y, maxDist float64) int {
	best := InvalidIndex
	bestDist := maxDist
	for i := 0; i < w.pointCount; i++ {
		p := &w.points[i]
		if !p.Active {
			continue
		}
		if d := vmath.Dist(p.X, p.Y, x, y); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// PickPoint selects a drag candidate using the configured pick radius
func (w *World) PickPoint(x, y float64) int {
	return w.FindNearestPoint(x, y, w.phys.DragPickRadius)
}

// DragTo eases point i toward (x, y) and zeroes its implicit velocity
// Position and old position are written identically so no energy is injected
func (w *World) DragTo(i int, x, y float64) error {
	if i < 0 || i >= w.pointCount || !w.points[i].Active {
		return fmt.Errorf("drag: %w: %d", ErrInvalidPoint, i)
	}
	p := &w.points[i]
	next := vmath.V2Lerp(p.Pos(), vmath.V2(x, y), w.phys.DragSmoothness)
	p.X, p.Y = next.X, next.Y
	p.OldX = p.X
	p.OldY = p.Y
	return nil
}

// SetLocked pins or releases point i
func (w *World) SetLocked(i int, locked bool) error {
	if i < 0 || i >= w.pointCount || !w.points[i].Active {
		return fmt.Errorf("set locked: %w: %d", ErrInvalidPoint, i)
	}
	w.points[i].Locked = locked
	return nil
}

// GrabPoint toggles the pin on the drag candidate nearest (x, y)
// A free point is locked and returned with grabbed true; an already locked point is released
// Returns InvalidIndex when nothing is in reach
func (w *World) GrabPoint(x, y float64) (i int, grabbed bool) {
	i = w.PickPoint(x, y)
	if i == InvalidIndex {
		return InvalidIndex, false
	}
	p := &w.points[i]
	p.Locked = !p.Locked
	w.logger.Debug("grab", "point", i, "locked", p.Locked)
	return i, p.Locked
}

// Dragging reports whether point i is still a valid drag target: active and pinned
func (w *World) Dragging(i int) bool {
	p := w.Point(i)
	return p != nil && p.Active && p.Locked
}
