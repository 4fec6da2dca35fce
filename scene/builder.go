// Package scene places prefabricated structures into a physics world
package scene

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/status"
)

// Metric keys published by the builder
const (
	MetricRagdolls       = "scene.ragdolls"
	MetricCoinsCollected = "scene.coins_collected"
)

// Renderer palette roles carried in point tags
const (
	ColorWhite = iota
	ColorCyan
	ColorYellow
	ColorRed
	ColorGreen
	ColorMagenta
	ColorGray
)

// DefaultHead is the stock ragdoll head tag
var DefaultHead = physics.Tag{Glyph: 'O', Color: ColorYellow}

// Builder spawns prefabs into a world and tracks the coins it placed
// Shares the world's single-writer discipline
type Builder struct {
	world  *physics.World
	logger *slog.Logger
	events event.Emitter
	head   physics.Tag

	coins []int

	statRagdolls *atomic.Int64
	statCoins    *atomic.Int64
}

// Option configures a Builder
type Option func(*Builder)

// WithLogger routes diagnostic logging; default discards
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithEventQueue publishes spawn and pickup events into q
func WithEventQueue(q *event.Queue) Option {
	return func(b *Builder) {
		b.events = event.NewEmitter(q)
	}
}

// WithStatus publishes builder counters into reg
func WithStatus(reg *status.Registry) Option {
	return func(b *Builder) {
		if reg != nil {
			b.statRagdolls = reg.Ints.Get(MetricRagdolls)
			b.statCoins = reg.Ints.Get(MetricCoinsCollected)
		}
	}
}

// WithHead overrides the ragdoll head tag
func WithHead(tag physics.Tag) Option {
	return func(b *Builder) {
		b.head = tag
	}
}

// NewBuilder binds a builder to w
func NewBuilder(w *physics.World, opts ...Option) *Builder {
	reg := status.NewRegistry()
	b := &Builder{
		world:        w,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		head:         DefaultHead,
		statRagdolls: reg.Ints.Get(MetricRagdolls),
		statCoins:    reg.Ints.Get(MetricCoinsCollected),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// World returns the bound world
func (b *Builder) World() *physics.World {
	return b.world
}

// SetHead changes the tag used for subsequently spawned ragdoll heads
func (b *Builder) SetHead(tag physics.Tag) {
	b.head = tag
}

// reserve fails before any mutation when a prefab would not fit
func (b *Builder) reserve(kind event.SpawnKind, points, sticks, boxes int) error {
	capPoints, capSticks, capBoxes, _ := b.world.Capacity()
	usedPoints, usedSticks, usedBoxes, _ := b.world.Counts()

	if usedPoints+points > capPoints || usedSticks+sticks > capSticks || usedBoxes+boxes > capBoxes {
		b.logger.Debug("prefab rejected", "kind", kind, "points", points, "sticks", sticks, "boxes", boxes)
		return fmt.Errorf("spawn %s: %w", kind, physics.ErrTableFull)
	}
	return nil
}

// begin reserves room and pushes an undo snapshot
func (b *Builder) begin(kind event.SpawnKind, points, sticks, boxes int) error {
	if err := b.reserve(kind, points, sticks, boxes); err != nil {
		return err
	}
	b.world.SaveState()
	return nil
}

func (b *Builder) done(kind event.SpawnKind, x, y float64) {
	b.events.Emit(event.EventSpawn, event.SpawnPayload{Kind: kind, X: x, Y: y}, b.world.Frame())
	b.logger.Debug("prefab spawned", "kind", kind, "x", x, "y", y)
}

func (b *Builder) point(x, y float64, opts physics.PointOpts) int {
	// Capacity was reserved up front
	idx, _ := b.world.AddPoint(x, y, opts)
	return idx
}

func (b *Builder) stick(p1, p2 int, ragdoll bool) int {
	idx, _ := b.world.AddStick(p1, p2, ragdoll)
	return idx
}
