package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/status"
)

// Metric keys published by the runner
const (
	MetricTicks  = "engine.ticks"
	MetricTickMs = "engine.tick_ms"
)

var (
	// ErrCommandQueueFull is returned by Submit when the runner is behind
	ErrCommandQueueFull = errors.New("command queue full")

	// ErrPanic wraps a panic recovered inside the tick loop
	ErrPanic = errors.New("runner panic")
)

// Command mutates the world between ticks, on the runner goroutine
type Command func(w *physics.World)

// Frame describes one completed tick for the render callback
type Frame struct {
	Tick       uint64
	Simulating bool
	Shake      float64
	Report     physics.StepReport
	Events     []event.GameEvent
}

// TickHook runs after the physics step, before events are dispatched
// Game logic such as coin pickup or target tracking plugs in here
type TickHook func(w *physics.World, simulating bool)

// RenderFunc draws a completed tick; the world is safe to read for the duration of the call
type RenderFunc func(w *physics.World, f Frame)

// Runner drives a world on a fixed tick and is its only writer while running
// Other goroutines interact through Submit and the atomic setters
type Runner struct {
	world    *physics.World
	router   *EventRouter
	commands chan Command
	interval time.Duration

	simulating atomic.Bool
	ticks      atomic.Uint64
	shake      float64

	hooks  []TickHook
	render RenderFunc
	logger *slog.Logger

	statTicks  *atomic.Int64
	statTickMs *status.AtomicFloat
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithRender installs the per-tick render callback
func WithRender(fn RenderFunc) RunnerOption {
	return func(r *Runner) {
		r.render = fn
	}
}

// WithTickHook appends a per-tick game logic hook
func WithTickHook(fn TickHook) RunnerOption {
	return func(r *Runner) {
		r.hooks = append(r.hooks, fn)
	}
}

// WithLogger routes runner logging; default discards
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithStatus publishes runner metrics into reg
func WithStatus(reg *status.Registry) RunnerOption {
	return func(r *Runner) {
		if reg != nil {
			r.statTicks = reg.Ints.Get(MetricTicks)
			r.statTickMs = reg.Floats.Get(MetricTickMs)
		}
	}
}

// NewRunner binds a runner to w, draining events from queue
// queue must be the one the world and its builders publish into
func NewRunner(w *physics.World, queue *event.Queue, opts ...RunnerOption) *Runner {
	reg := status.NewRegistry()
	r := &Runner{
		world:      w,
		router:     NewEventRouter(queue),
		commands:   make(chan Command, parameter.CommandQueueSize),
		interval:   parameter.TickInterval,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		statTicks:  reg.Ints.Get(MetricTicks),
		statTickMs: reg.Floats.Get(MetricTickMs),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterEventHandler adds a handler; must be called before Run
func (r *Runner) RegisterEventHandler(h EventHandler) {
	r.router.Register(h)
}

// Submit queues cmd for the next tick without blocking
func (r *Runner) Submit(cmd Command) error {
	select {
	case r.commands <- cmd:
		return nil
	default:
		r.logger.Warn("command dropped", "reason", "queue full")
		return ErrCommandQueueFull
	}
}

// SetSimulating starts or pauses physics; commands and particles keep running
func (r *Runner) SetSimulating(on bool) {
	r.simulating.Store(on)
}

// ToggleSimulating flips the simulation state and returns the new value
func (r *Runner) ToggleSimulating() bool {
	for {
		cur := r.simulating.Load()
		if r.simulating.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Simulating reports whether physics is stepping
func (r *Runner) Simulating() bool {
	return r.simulating.Load()
}

// Ticks returns the number of completed runner ticks
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Run ticks until ctx is cancelled
// Deadlines advance by the interval so scheduling jitter does not accumulate; a runner more than two ticks behind resynchronizes
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPanic, p, debug.Stack())
		}
	}()

	r.logger.Info("runner started", "interval", r.interval)
	defer func() {
		r.logger.Info("runner stopped", "ticks", r.ticks.Load(), "events_dropped", r.router.queue.Dropped())
	}()

	timer := time.NewTimer(r.interval)
	defer timer.Stop()
	deadline := time.Now().Add(r.interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		r.Tick()

		now := time.Now()
		deadline = deadline.Add(r.interval)
		if now.Sub(deadline) > 2*r.interval {
			deadline = now.Add(r.interval)
		}
		timer.Reset(max(deadline.Sub(now), 0))
	}
}

// Tick runs one cycle synchronously: commands, physics, hooks, particles, events, shake, render
// Run calls it on its own goroutine; call it directly only when Run is not active
func (r *Runner) Tick() {
	start := time.Now()

	r.drainCommands()

	simulating := r.simulating.Load()
	var report physics.StepReport
	if simulating {
		report = r.world.StepPhysics()
	}
	for _, hook := range r.hooks {
		hook(r.world, simulating)
	}
	r.world.UpdateParticles()

	events := r.router.DispatchAll()
	r.updateShake(report, events)

	tick := r.ticks.Add(1)
	if r.render != nil {
		r.render(r.world, Frame{
			Tick:       tick,
			Simulating: simulating,
			Shake:      r.shake,
			Report:     report,
			Events:     events,
		})
	}

	r.statTicks.Add(1)
	r.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)
}

func (r *Runner) drainCommands() {
	for {
		select {
		case cmd := <-r.commands:
			cmd(r.world)
		default:
			return
		}
	}
}

// updateShake decays the camera shake and kicks it on breaks and explosions
func (r *Runner) updateShake(report physics.StepReport, events []event.GameEvent) {
	r.shake = max(r.shake-parameter.ShakeDecay, 0)

	if report.Broken > 0 {
		r.shake += parameter.ShakeBreak
	}
	for _, ev := range events {
		if ev.Type == event.EventExplosion {
			r.shake += parameter.ShakeExplosion
		}
	}
	r.shake = min(r.shake, parameter.ShakeMax)
}

// Shake returns the current camera shake magnitude
// Only meaningful on the runner goroutine or after Run returns
func (r *Runner) Shake() float64 {
	return r.shake
}
