package parameter

import "time"

// Runner timing
const (
	// TickInterval is the fixed simulation step the physics constants are tuned for
	TickInterval = 33 * time.Millisecond

	// CommandQueueSize bounds pending between-tick commands
	CommandQueueSize = 64
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Camera shake feedback
const (
	ShakeDecay     = 0.15
	ShakeExplosion = 2.0
	ShakeBreak     = 0.5
	ShakeMax       = 2.0
)
