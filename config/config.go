package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

// Config is the full tunable surface of the simulator
// Zero values are never valid; start from Default and overlay a file
type Config struct {
	World     WorldConfig     `toml:"world"`
	Physics   PhysicsConfig   `toml:"physics"`
	Explosion ExplosionConfig `toml:"explosion"`
	Capacity  CapacityConfig  `toml:"capacity"`
	Audio     AudioConfig     `toml:"audio"`
	Sandbox   SandboxConfig   `toml:"sandbox"`
}

// WorldConfig defines the simulation bounds in cells
type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PhysicsConfig holds the Verlet solver constants
// Gravity and Friction assume a fixed tick; they are never rescaled by measured frame time
type PhysicsConfig struct {
	Gravity          float64 `toml:"gravity"`
	Friction         float64 `toml:"friction"`
	Bounce           float64 `toml:"bounce"`
	GroundFriction   float64 `toml:"ground_friction"`
	Iterations       int     `toml:"iterations"`
	StickBreakFactor float64 `toml:"stick_break_factor"`
	MinSeparation    float64 `toml:"min_separation"`
	DragSmoothness   float64 `toml:"drag_smoothness"`
	DragPickRadius   float64 `toml:"drag_pick_radius"`
}

// ExplosionConfig holds the radial force field constants
type ExplosionConfig struct {
	Radius        float64 `toml:"radius"`
	Power         float64 `toml:"power"`
	MinDistance   float64 `toml:"min_distance"`
	UnlockRadius  float64 `toml:"unlock_radius"`
	WallFactor    float64 `toml:"wall_factor"`
	WallMinHeight float64 `toml:"wall_min_height"`
	StickFactor   float64 `toml:"stick_factor"`
}

// CapacityConfig sizes the entity tables
type CapacityConfig struct {
	Points     int `toml:"points"`
	Sticks     int `toml:"sticks"`
	Boxes      int `toml:"boxes"`
	Targets    int `toml:"targets"`
	Particles  int `toml:"particles"`
	UndoStates int `toml:"undo_states"`
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	MasterVolume float64 `toml:"master_volume"`
}

// SandboxConfig controls the interactive driver
type SandboxConfig struct {
	TickMillis int    `toml:"tick_ms"`
	Seed       int64  `toml:"seed"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// Default returns the tuned defaults from the parameter package
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  parameter.WorldWidth,
			Height: parameter.WorldHeight,
		},
		Physics: PhysicsConfig{
			Gravity:          parameter.Gravity,
			Friction:         parameter.Friction,
			Bounce:           parameter.Bounce,
			GroundFriction:   parameter.GroundFriction,
			Iterations:       parameter.ConstraintIterations,
			StickBreakFactor: parameter.StickBreakFactor,
			MinSeparation:    parameter.MinSeparation,
			DragSmoothness:   parameter.DragSmoothness,
			DragPickRadius:   parameter.DragPickRadius,
		},
		Explosion: ExplosionConfig{
			Radius:        parameter.ExplosionRadius,
			Power:         parameter.ExplosionPower,
			MinDistance:   parameter.ExplosionMinDistance,
			UnlockRadius:  parameter.ExplosionUnlockRadius,
			WallFactor:    parameter.ExplosionWallFactor,
			WallMinHeight: parameter.ExplosionWallMinHeight,
			StickFactor:   parameter.ExplosionStickFactor,
		},
		Capacity: CapacityConfig{
			Points:     parameter.MaxPoints,
			Sticks:     parameter.MaxSticks,
			Boxes:      parameter.MaxBoxes,
			Targets:    parameter.MaxTargets,
			Particles:  parameter.MaxParticles,
			UndoStates: parameter.MaxUndoStates,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   parameter.AudioSampleRate,
			MasterVolume: parameter.AudioMasterVolume,
		},
		Sandbox: SandboxConfig{
			TickMillis: int(parameter.TickInterval / time.Millisecond),
			LogLevel:   "info",
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config parse: unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field, joined
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width >= 1, "world.width must be at least 1, got %v", c.World.Width)
	check(c.World.Height >= 1, "world.height must be at least 1, got %v", c.World.Height)

	p := c.Physics
	check(p.Friction > 0 && p.Friction < 1, "physics.friction must be in (0,1), got %v", p.Friction)
	check(p.Bounce >= 0 && p.Bounce < 1, "physics.bounce must be in [0,1), got %v", p.Bounce)
	check(p.GroundFriction >= 0 && p.GroundFriction <= 1, "physics.ground_friction must be in [0,1], got %v", p.GroundFriction)
	check(p.Iterations >= 1, "physics.iterations must be at least 1, got %d", p.Iterations)
	check(p.StickBreakFactor > 1, "physics.stick_break_factor must exceed 1, got %v", p.StickBreakFactor)
	check(p.MinSeparation > 0, "physics.min_separation must be positive, got %v", p.MinSeparation)
	check(p.DragSmoothness > 0 && p.DragSmoothness <= 1, "physics.drag_smoothness must be in (0,1], got %v", p.DragSmoothness)
	check(p.DragPickRadius > 0, "physics.drag_pick_radius must be positive, got %v", p.DragPickRadius)

	e := c.Explosion
	check(e.Radius > 0, "explosion.radius must be positive, got %v", e.Radius)
	check(e.Power >= 0, "explosion.power must not be negative, got %v", e.Power)
	check(e.MinDistance > 0 && e.MinDistance < e.Radius, "explosion.min_distance must be in (0,radius), got %v", e.MinDistance)
	check(e.UnlockRadius >= 0, "explosion.unlock_radius must not be negative, got %v", e.UnlockRadius)
	check(e.WallFactor >= 0, "explosion.wall_factor must not be negative, got %v", e.WallFactor)
	check(e.StickFactor >= 0, "explosion.stick_factor must not be negative, got %v", e.StickFactor)

	cp := c.Capacity
	check(cp.Points > 0, "capacity.points must be positive, got %d", cp.Points)
	check(cp.Sticks > 0, "capacity.sticks must be positive, got %d", cp.Sticks)
	check(cp.Boxes > 0, "capacity.boxes must be positive, got %d", cp.Boxes)
	check(cp.Targets > 0, "capacity.targets must be positive, got %d", cp.Targets)
	check(cp.Particles >= 0, "capacity.particles must not be negative, got %d", cp.Particles)
	check(cp.UndoStates >= 1, "capacity.undo_states must be at least 1, got %d", cp.UndoStates)

	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume must be in [0,1], got %v", c.Audio.MasterVolume)

	check(c.Sandbox.TickMillis > 0, "sandbox.tick_ms must be positive, got %d", c.Sandbox.TickMillis)
	_, levelErr := c.Sandbox.SlogLevel()
	check(levelErr == nil, "sandbox.log_level: %v", levelErr)

	return errors.Join(errs...)
}

// TickInterval returns the runner step as a duration
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Sandbox.TickMillis) * time.Millisecond
}

// SlogLevel maps the configured level name to a slog level
func (s SandboxConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s.LogLevel)
	}
	return level, nil
}
