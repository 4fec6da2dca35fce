package parameter

// Prefab geometry in world cells
const (
	BombRadius = 1.5

	RopeSegments = 10
	RopeRadius   = 0.5

	PlatformSpacing   = 3
	PlatformRadius    = 0.6
	PlatformBoxOffset = 1.5
	PlatformBoxHeight = 3.0

	CrateSpacing = 5.0
	CrateRadius  = 0.8

	CoinRadius       = 0.5
	CoinPickupRadius = 3.0
)

// Terrain heightfield
const (
	TerrainStep      = 2.0
	TerrainRadius    = 1.0
	TerrainAmplitude = 6.0
	TerrainFrequency = 0.05
	TerrainAlpha     = 2.0
	TerrainBeta      = 2.0
	TerrainOctaves   = 3
)
