package physics

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/status"
)

// Metric keys published by the world
const (
	MetricTicks          = "physics.ticks"
	MetricPointsSpawned  = "physics.points_spawned"
	MetricSticksBroken   = "physics.sticks_broken"
	MetricExplosions     = "physics.explosions"
	MetricDetonations    = "physics.detonations"
	MetricTargetsReached = "physics.targets_reached"
	MetricUndos          = "physics.undos"
)

// World owns every physics table and is the single writer of their contents
// Not safe for concurrent use: ticks, spawns, undo and explosions must not interleave
type World struct {
	ID uuid.UUID

	width, height float64
	phys          config.PhysicsConfig
	blast         config.ExplosionConfig

	// Dense tables sized to capacity; entries at or beyond the count are stale
	points      []Point
	pointCount  int
	sticks      []Stick
	stickCount  int
	boxes       []Box
	boxCount    int
	targets     []Target
	targetCount int
	particles   []Particle

	snapshots *SnapshotManager

	frame  uint64
	rng    *rand.Rand
	logger *slog.Logger
	events event.Emitter

	statTicks          *atomic.Int64
	statPointsSpawned  *atomic.Int64
	statSticksBroken   *atomic.Int64
	statExplosions     *atomic.Int64
	statDetonations    *atomic.Int64
	statTargetsReached *atomic.Int64
	statUndos          *atomic.Int64
}

// Option configures optional World collaborators
type Option func(*World)

// WithLogger routes diagnostic logging; default discards
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithEventQueue publishes world events into q
func WithEventQueue(q *event.Queue) Option {
	return func(w *World) {
		w.events = event.NewEmitter(q)
	}
}

// WithStatus publishes counters into a shared registry
func WithStatus(reg *status.Registry) Option {
	return func(w *World) {
		if reg != nil {
			w.bindMetrics(reg)
		}
	}
}

// WithSeed makes particle randomness reproducible
func WithSeed(seed uint64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewWorld allocates all tables at the configured capacities
// cfg must already be validated
func NewWorld(cfg *config.Config, opts ...Option) *World {
	cp := cfg.Capacity
	w := &World{
		ID:        uuid.New(),
		width:     cfg.World.Width,
		height:    cfg.World.Height,
		phys:      cfg.Physics,
		blast:     cfg.Explosion,
		points:    make([]Point, cp.Points),
		sticks:    make([]Stick, cp.Sticks),
		boxes:     make([]Box, cp.Boxes),
		targets:   make([]Target, cp.Targets),
		particles: make([]Particle, cp.Particles),
		snapshots: NewSnapshotManager(cp.UndoStates, cp.Points, cp.Sticks, cp.Boxes),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	w.bindMetrics(status.NewRegistry())

	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("world", w.ID.String())
	return w
}

func (w *World) bindMetrics(reg *status.Registry) {
	w.statTicks = reg.Ints.Get(MetricTicks)
	w.statPointsSpawned = reg.Ints.Get(MetricPointsSpawned)
	w.statSticksBroken = reg.Ints.Get(MetricSticksBroken)
	w.statExplosions = reg.Ints.Get(MetricExplosions)
	w.statDetonations = reg.Ints.Get(MetricDetonations)
	w.statTargetsReached = reg.Ints.Get(MetricTargetsReached)
	w.statUndos = reg.Ints.Get(MetricUndos)
}

// Size returns the world bounds
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Frame returns the number of completed physics ticks
func (w *World) Frame() uint64 {
	return w.frame
}

// Points returns the live point table; entries may be inactive
func (w *World) Points() []Point {
	return w.points[:w.pointCount]
}

// Sticks returns the live stick table; entries may be inactive
func (w *World) Sticks() []Stick {
	return w.sticks[:w.stickCount]
}

// Boxes returns the live box table; entries may be inactive
func (w *World) Boxes() []Box {
	return w.boxes[:w.boxCount]
}

// Targets returns the live target table
func (w *World) Targets() []Target {
	return w.targets[:w.targetCount]
}

// Particles returns the whole particle pool; check Active
func (w *World) Particles() []Particle {
	return w.particles
}

// Point returns a mutable reference to point i, nil when out of range
func (w *World) Point(i int) *Point {
	if i < 0 || i >= w.pointCount {
		return nil
	}
	return &w.points[i]
}

// Stick returns a copy of stick i; sticks change only through the solver and BreakStick
func (w *World) Stick(i int) (Stick, bool) {
	if i < 0 || i >= w.stickCount {
		return Stick{}, false
	}
	return w.sticks[i], true
}

// Box returns a mutable reference to box i, nil when out of range
func (w *World) Box(i int) *Box {
	if i < 0 || i >= w.boxCount {
		return nil
	}
	return &w.boxes[i]
}

// Target returns a mutable reference to target i, nil when out of range
func (w *World) Target(i int) *Target {
	if i < 0 || i >= w.targetCount {
		return nil
	}
	return &w.targets[i]
}

// Capacity reports table sizes
func (w *World) Capacity() (points, sticks, boxes, targets int) {
	return len(w.points), len(w.sticks), len(w.boxes), len(w.targets)
}

// Physics returns the solver constants in use
func (w *World) Physics() config.PhysicsConfig {
	return w.phys
}

func (w *World) emit(t event.EventType, payload any) {
	w.events.Emit(t, payload, w.frame)
}
