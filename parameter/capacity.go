package parameter

// Entity table capacities, fixed for a world's lifetime
const (
	MaxPoints    = 1000
	MaxSticks    = 1000
	MaxBoxes     = 20
	MaxTargets   = 5
	MaxParticles = 150

	// MaxUndoStates is the snapshot ring size
	MaxUndoStates = 5
)
