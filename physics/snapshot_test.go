package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

type tableCopy struct {
	points []Point
	sticks []Stick
	boxes  []Box
}

func captureTables(w *World) tableCopy {
	return tableCopy{
		points: append([]Point(nil), w.Points()...),
		sticks: append([]Stick(nil), w.Sticks()...),
		boxes:  append([]Box(nil), w.Boxes()...),
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	w := newTestWorld(t)
	mustPoint(t, w, 10, 10, PointOpts{})
	before := captureTables(w)

	assert.False(t, w.Undo())
	assert.Equal(t, before, captureTables(w))
}

func TestUndoBoundedByRing(t *testing.T) {
	n := parameter.MaxUndoStates
	w := newTestWorld(t)

	for i := 0; i <= n; i++ {
		w.SaveState()
		mustPoint(t, w, float64(10+i), 10, PointOpts{})
	}
	assert.Equal(t, n, w.UndoAvailable())

	for i := 0; i < n; i++ {
		assert.True(t, w.Undo(), "undo %d", i)
	}
	assert.False(t, w.Undo())
	assert.Zero(t, w.UndoAvailable())
}

func TestUndoWalksBackToFirstSnapshot(t *testing.T) {
	n := parameter.MaxUndoStates
	w := newTestWorld(t)
	w.ClearWorld()

	var first tableCopy
	for i := 0; i < n; i++ {
		a := mustPoint(t, w, float64(10+4*i), 10, PointOpts{Radius: 1})
		b := mustPoint(t, w, float64(12+4*i), 10, PointOpts{Radius: 1})
		mustStick(t, w, a, b, false)
		_, err := w.AddBox(float64(10+4*i), 30, 3, 3, true, i%2 == 0)
		require.NoError(t, err)

		w.SaveState()
		if i == 0 {
			first = captureTables(w)
		}
	}

	// Mutate past the last save, including a physics tick
	mustPoint(t, w, 100, 5, PointOpts{})
	w.StepPhysics()

	for i := 0; i < n; i++ {
		require.True(t, w.Undo())
	}
	assert.Equal(t, first, captureTables(w))
}

func TestUndoRestoresMostRecentSave(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	w.SaveState()
	saved := captureTables(w)

	w.Point(a).X = 30
	mustPoint(t, w, 40, 10, PointOpts{})
	_, err := w.AddBox(50, 30, 2, 2, true, false)
	require.NoError(t, err)

	require.True(t, w.Undo())
	assert.Equal(t, saved, captureTables(w))

	points, _, boxes, _ := w.Counts()
	assert.Equal(t, 1, points)
	assert.Zero(t, boxes)
}

func TestUndoRevivesBrokenStickFromSnapshot(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	s := mustStick(t, w, a, b, false)
	w.SaveState()

	require.NoError(t, w.BreakStick(s))
	require.True(t, w.Undo())

	stick, _ := w.Stick(s)
	assert.True(t, stick.Active)
}

func TestSnapshotManagerCustomCapacity(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Capacity.UndoStates = 2 })
	for range 4 {
		w.SaveState()
	}
	assert.Equal(t, 2, w.UndoAvailable())
	assert.True(t, w.Undo())
	assert.True(t, w.Undo())
	assert.False(t, w.Undo())
}

func TestSnapshotManagerReset(t *testing.T) {
	m := NewSnapshotManager(3, 4, 4, 4)
	m.Save([]Point{{X: 1, Active: true}}, nil, nil)
	require.Equal(t, 1, m.Available())

	m.Reset()
	_, _, _, ok := m.Restore()
	assert.False(t, ok)
	assert.Equal(t, 3, m.Capacity())
}
