package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
)

func TestTerrainHeightsDeterministic(t *testing.T) {
	a := TerrainHeights(120, 40, 99)
	b := TerrainHeights(120, 40, 99)
	assert.Equal(t, a, b)
	assert.Len(t, a, 60)

	for _, h := range a {
		assert.GreaterOrEqual(t, h, parameter.TerrainRadius)
		assert.LessOrEqual(t, h, 39-parameter.TerrainRadius)
	}
}

func TestSpawnTerrain(t *testing.T) {
	b := newTestBuilder(t)
	w := b.World()

	tr, err := b.SpawnTerrain(3)
	require.NoError(t, err)
	require.Len(t, tr.Points, 60)
	assert.Len(t, tr.Sticks, 59)

	for i, idx := range tr.Points {
		p := w.Point(idx)
		assert.True(t, p.Locked)
		assert.Equal(t, float64(i)*parameter.TerrainStep, p.X)
	}

	// Pinned ground never moves
	before := *w.Point(tr.Points[10])
	for range 30 {
		w.StepPhysics()
	}
	assert.Equal(t, before.Y, w.Point(tr.Points[10]).Y)
	assert.Equal(t, 1, w.UndoAvailable())
}

func TestSpawnTerrainNarrowWorld(t *testing.T) {
	assert.Empty(t, TerrainHeights(0.5, 40, 1))

	cfg := config.Default()
	cfg.World.Width = 0.5
	b := NewBuilder(physics.NewWorld(cfg, physics.WithSeed(7)))

	_, err := b.SpawnTerrain(1)
	require.ErrorIs(t, err, ErrNoTerrain)

	// Rejected before anything was written
	points, sticks, _, _ := b.World().Counts()
	assert.Zero(t, points)
	assert.Zero(t, sticks)
	assert.Zero(t, b.World().UndoAvailable())
}
