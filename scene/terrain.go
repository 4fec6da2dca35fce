package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
)

// ErrNoTerrain is returned when the world is too narrow to sample a single column
var ErrNoTerrain = errors.New("world too narrow for terrain")

// Terrain is a pinned heightfield of points chained left to right
type Terrain struct {
	Points []int
	Sticks []int
}

// TerrainHeights samples the ground profile at every column step across the world
// Heights are clamped to stay inside the world with room for the point radius
func TerrainHeights(width, height float64, seed int64) []float64 {
	noise := perlin.NewPerlin(parameter.TerrainAlpha, parameter.TerrainBeta, parameter.TerrainOctaves, seed)

	base := height - 1 - parameter.TerrainAmplitude
	lo := parameter.TerrainRadius
	hi := height - 1 - parameter.TerrainRadius

	n := int(math.Floor((width-1)/parameter.TerrainStep)) + 1
	heights := make([]float64, n)
	for i := range heights {
		x := float64(i) * parameter.TerrainStep
		y := base + noise.Noise1D(x*parameter.TerrainFrequency)*parameter.TerrainAmplitude
		heights[i] = math.Max(lo, math.Min(hi, y))
	}
	return heights
}

// SpawnTerrain lays a seeded heightfield across the full world width
// The same seed always yields the same ground
func (b *Builder) SpawnTerrain(seed int64) (Terrain, error) {
	width, height := b.world.Size()
	heights := TerrainHeights(width, height, seed)
	n := len(heights)
	if n == 0 {
		return Terrain{}, fmt.Errorf("spawn %s: %w", event.SpawnTerrain, ErrNoTerrain)
	}

	if err := b.begin(event.SpawnTerrain, n, n-1, 0); err != nil {
		return Terrain{}, err
	}

	tag := physics.Tag{Glyph: '^', Color: ColorGreen}
	t := Terrain{
		Points: make([]int, 0, n),
		Sticks: make([]int, 0, n-1),
	}
	for i, y := range heights {
		p := b.point(float64(i)*parameter.TerrainStep, y, physics.PointOpts{
			Radius: parameter.TerrainRadius,
			Locked: true,
			Tag:    tag,
		})
		if i > 0 {
			t.Sticks = append(t.Sticks, b.stick(t.Points[i-1], p, false))
		}
		t.Points = append(t.Points, p)
	}

	b.done(event.SpawnTerrain, 0, heights[0])
	return t, nil
}
