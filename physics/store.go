package physics

import (
	"fmt"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

// AddPoint appends a point at rest at (x, y)
// Returns InvalidIndex and ErrTableFull without mutating state when the table is full
func (w *World) AddPoint(x, y float64, opts PointOpts) (int, error) {
	if w.pointCount >= len(w.points) {
		w.logger.Debug("point rejected", "reason", "table full", "capacity", len(w.points))
		return InvalidIndex, fmt.Errorf("add point: %w (capacity %d)", ErrTableFull, len(w.points))
	}

	idx := w.pointCount
	w.points[idx] = Point{
		X:           x,
		Y:           y,
		OldX:        x,
		OldY:        y,
		Radius:      opts.Radius,
		Locked:      opts.Locked,
		Active:      true,
		Ragdoll:     opts.Ragdoll,
		SpecialHead: opts.SpecialHead,
		Explosive:   opts.Explosive,
		Tag:         opts.Tag,
	}
	w.pointCount++
	w.statPointsSpawned.Add(1)
	return idx, nil
}

// AddStick connects two existing active points
// Rest length is the endpoints' separation at this moment; later moves do not change it
func (w *World) AddStick(p1, p2 int, ragdoll bool) (int, error) {
	if w.stickCount >= len(w.sticks) {
		w.logger.Debug("stick rejected", "reason", "table full", "capacity", len(w.sticks))
		return InvalidIndex, fmt.Errorf("add stick: %w (capacity %d)", ErrTableFull, len(w.sticks))
	}
	if err := w.checkEndpoint(p1); err != nil {
		return InvalidIndex, err
	}
	if err := w.checkEndpoint(p2); err != nil {
		return InvalidIndex, err
	}
	if p1 == p2 {
		w.logger.Debug("stick rejected", "reason", "self loop", "point", p1)
		return InvalidIndex, fmt.Errorf("add stick: %w: both endpoints are %d", ErrInvalidPoint, p1)
	}

	a, b := &w.points[p1], &w.points[p2]
	idx := w.stickCount
	w.sticks[idx] = Stick{
		P1:      p1,
		P2:      p2,
		Length:  vmath.Dist(a.X, a.Y, b.X, b.Y),
		Active:  true,
		Ragdoll: ragdoll,
	}
	w.stickCount++
	return idx, nil
}

func (w *World) checkEndpoint(i int) error {
	if i < 0 || i >= w.pointCount {
		w.logger.Debug("stick rejected", "reason", "out of range", "point", i, "count", w.pointCount)
		return fmt.Errorf("add stick: %w: %d not in [0,%d)", ErrInvalidPoint, i, w.pointCount)
	}
	if !w.points[i].Active {
		w.logger.Debug("stick rejected", "reason", "inactive", "point", i)
		return fmt.Errorf("add stick: %w: %d is inactive", ErrInvalidPoint, i)
	}
	return nil
}

// AddBox appends an axis-aligned box given by center and size
func (w *World) AddBox(x, y, width, height float64, solid, wall bool) (int, error) {
	if w.boxCount >= len(w.boxes) {
		w.logger.Debug("box rejected", "reason", "table full", "capacity", len(w.boxes))
		return InvalidIndex, fmt.Errorf("add box: %w (capacity %d)", ErrTableFull, len(w.boxes))
	}

	idx := w.boxCount
	w.boxes[idx] = Box{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Active: true,
		Solid:  solid,
		Wall:   wall,
	}
	w.boxCount++
	return idx, nil
}

// AddTarget appends a circular goal zone with its latch cleared
func (w *World) AddTarget(x, y, radius float64) (int, error) {
	if w.targetCount >= len(w.targets) {
		w.logger.Debug("target rejected", "reason", "table full", "capacity", len(w.targets))
		return InvalidIndex, fmt.Errorf("add target: %w (capacity %d)", ErrTableFull, len(w.targets))
	}

	idx := w.targetCount
	w.targets[idx] = Target{X: x, Y: y, Radius: radius, Active: true}
	w.targetCount++
	return idx, nil
}

// ClearWorld resets all counts and the undo history and deactivates particles
// Table contents are left in place; nothing reads beyond the counts
func (w *World) ClearWorld() {
	w.pointCount = 0
	w.stickCount = 0
	w.boxCount = 0
	w.targetCount = 0

	for i := range w.particles {
		w.particles[i].Active = false
	}

	w.snapshots.Reset()
	w.emit(event.EventWorldClear, nil)
}

// RemovePoint soft-deletes point i; sticks attached to it stop being solved
func (w *World) RemovePoint(i int) error {
	if i < 0 || i >= w.pointCount {
		return fmt.Errorf("remove point: %w: %d not in [0,%d)", ErrInvalidPoint, i, w.pointCount)
	}
	w.points[i].Active = false
	return nil
}

// Counts returns the number of slots in use per table, active or not
func (w *World) Counts() (points, sticks, boxes, targets int) {
	return w.pointCount, w.stickCount, w.boxCount, w.targetCount
}

// ActivePointCount counts points not yet deleted
func (w *World) ActivePointCount() int {
	n := 0
	for i := 0; i < w.pointCount; i++ {
		if w.points[i].Active {
			n++
		}
	}
	return n
}

// ActiveStickCount counts unbroken sticks
// Comparing the value before and after a tick detects breaks
func (w *World) ActiveStickCount() int {
	n := 0
	for i := 0; i < w.stickCount; i++ {
		if w.sticks[i].Active {
			n++
		}
	}
	return n
}
