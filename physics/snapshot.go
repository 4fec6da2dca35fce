package physics

import "github.com/lixenwraith/ragdoll-sandbox/event"

// snapshot is one ring slot holding copies of the point, stick and box tables
type snapshot struct {
	points []Point
	sticks []Stick
	boxes  []Box
	valid  bool
}

// SnapshotManager is a LIFO undo history stored in a fixed ring
// Saving past capacity overwrites the oldest slot; there is no redo
type SnapshotManager struct {
	slots     []snapshot
	cursor    int
	available int
}

// NewSnapshotManager preallocates n slots sized to the table capacities
func NewSnapshotManager(n, maxPoints, maxSticks, maxBoxes int) *SnapshotManager {
	if n < 1 {
		n = 1
	}
	m := &SnapshotManager{slots: make([]snapshot, n)}
	for i := range m.slots {
		m.slots[i] = snapshot{
			points: make([]Point, 0, maxPoints),
			sticks: make([]Stick, 0, maxSticks),
			boxes:  make([]Box, 0, maxBoxes),
		}
	}
	return m
}

// Save advances the cursor and copies the given live tables into that slot
func (m *SnapshotManager) Save(points []Point, sticks []Stick, boxes []Box) {
	m.cursor = (m.cursor + 1) % len(m.slots)
	s := &m.slots[m.cursor]
	s.points = append(s.points[:0], points...)
	s.sticks = append(s.sticks[:0], sticks...)
	s.boxes = append(s.boxes[:0], boxes...)
	s.valid = true

	if m.available < len(m.slots) {
		m.available++
	}
}

// Restore returns the slot at the cursor and retreats it
// ok is false when no snapshot is available
func (m *SnapshotManager) Restore() (points []Point, sticks []Stick, boxes []Box, ok bool) {
	if m.available == 0 {
		return nil, nil, nil, false
	}
	s := &m.slots[m.cursor]
	if !s.valid {
		return nil, nil, nil, false
	}

	m.cursor = (m.cursor - 1 + len(m.slots)) % len(m.slots)
	m.available--
	return s.points, s.sticks, s.boxes, true
}

// Available returns the number of undo steps remaining
func (m *SnapshotManager) Available() int {
	return m.available
}

// Capacity returns the ring size
func (m *SnapshotManager) Capacity() int {
	return len(m.slots)
}

// Reset discards all history
func (m *SnapshotManager) Reset() {
	for i := range m.slots {
		m.slots[i].valid = false
	}
	m.cursor = 0
	m.available = 0
}

// SaveState pushes the current point, stick and box tables onto the undo history
// Callers save before any spawning mutation
func (w *World) SaveState() {
	w.snapshots.Save(w.points[:w.pointCount], w.sticks[:w.stickCount], w.boxes[:w.boxCount])
	w.emit(event.EventStateSaved, nil)
}

// Undo restores the most recent snapshot
// Returns false without touching state when the history is empty
func (w *World) Undo() bool {
	points, sticks, boxes, ok := w.snapshots.Restore()
	if !ok {
		return false
	}

	w.pointCount = copy(w.points, points)
	w.stickCount = copy(w.sticks, sticks)
	w.boxCount = copy(w.boxes, boxes)

	w.statUndos.Add(1)
	w.emit(event.EventUndo, nil)
	w.logger.Debug("undo", "remaining", w.snapshots.Available())
	return true
}

// UndoAvailable returns the number of snapshots that can still be restored
func (w *World) UndoAvailable() int {
	return w.snapshots.Available()
}
