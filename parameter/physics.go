package parameter

// Verlet solver tuning, calibrated against a fixed nominal tick
// Changing the tick rate requires re-deriving Gravity and Friction
const (
	// Gravity is the per-tick downward displacement added on the y axis
	Gravity = 0.3

	// Friction scales implicit velocity once per tick, in (0,1)
	Friction = 0.98

	// Bounce scales the reflected velocity component on wall and box contact
	Bounce = 0.6

	// GroundFriction damps horizontal velocity on floor contact
	GroundFriction = 0.8

	// ConstraintIterations is the number of relaxation passes per tick
	ConstraintIterations = 8

	// StickBreakFactor is the overstretch ratio at which a stick breaks
	StickBreakFactor = 3.0

	// MinSeparation skips distance corrections below this length to avoid division blow-up
	MinSeparation = 1e-3

	// DragSmoothness is the fraction of the remaining distance a dragged point covers per call
	DragSmoothness = 0.3

	// DragPickRadius is the maximum cursor distance for drag selection
	DragPickRadius = 5.0
)

// World bounds in cells
const (
	WorldWidth  = 120
	WorldHeight = 40
)

// Explosion force field
const (
	ExplosionRadius = 15.0
	ExplosionPower  = 2.5

	// ExplosionMinDistance excludes points sitting on the epicenter
	ExplosionMinDistance = 0.1

	// ExplosionUnlockRadius frees pinned ragdoll parts inside this distance
	ExplosionUnlockRadius = 5.0

	// ExplosionWallFactor scales the radius for wall box removal
	ExplosionWallFactor = 0.6

	// ExplosionWallMinHeight protects low walls (floors, platforms) from removal
	ExplosionWallMinHeight = 5.0

	// ExplosionStickFactor scales the radius for non-ragdoll stick removal
	ExplosionStickFactor = 0.5
)
