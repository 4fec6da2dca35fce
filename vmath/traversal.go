package vmath

import "math"

// GridTraverser is a zero-allocation iterator over every cell a segment touches (Supercover DDA)
// Cells are unit squares; cell (i, j) covers [i, i+1) x [j, j+1)
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from (x1, y1) to (x2, y2) in world units
func NewGridTraverser(x1, y1, x2, y2 float64) GridTraverser {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	t := GridTraverser{
		currX: ix, currY: iy,
		targetX: int(math.Floor(x2)), targetY: int(math.Floor(y2)),
		tMaxX: math.Inf(1), tMaxY: math.Inf(1),
		tDeltaX: math.Inf(1), tDeltaY: math.Inf(1),
	}

	dx := x2 - x1
	dy := y2 - y1

	if dx != 0 {
		t.tDeltaX = math.Abs(1 / dx)
		if dx > 0 {
			t.stepX = 1
			t.tMaxX = (float64(ix+1) - x1) * t.tDeltaX
		} else {
			t.stepX = -1
			t.tMaxX = (x1 - float64(ix)) * t.tDeltaX
		}
	}
	if dy != 0 {
		t.tDeltaY = math.Abs(1 / dy)
		if dy > 0 {
			t.stepY = 1
			t.tMaxY = (float64(iy+1) - y1) * t.tDeltaY
		} else {
			t.stepY = -1
			t.tMaxY = (y1 - float64(iy)) * t.tDeltaY
		}
	}

	return t
}

// Next advances to the next cell; the first call yields the start cell
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.currX != t.targetX {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		} else {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		}
	case t.tMaxX > t.tMaxY:
		if t.currY != t.targetY {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		} else {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		}
	default:
		// Exact corner crossing, step both axes
		if t.currX != t.targetX {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		}
		if t.currY != t.targetY {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		}
	}

	return true
}

// Pos returns the current cell
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// Traverse calls fn for each cell along the segment; fn returning false stops early
func Traverse(x1, y1, x2, y2 float64, fn func(x, y int) bool) {
	t := NewGridTraverser(x1, y1, x2, y2)
	for t.Next() {
		if !fn(t.Pos()) {
			return
		}
	}
}
