package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, parameter.ConstraintIterations, cfg.Physics.Iterations)
	assert.Equal(t, parameter.StickBreakFactor, cfg.Physics.StickBreakFactor)
	assert.Equal(t, parameter.MaxUndoStates, cfg.Capacity.UndoStates)
	assert.Equal(t, parameter.TickInterval, cfg.TickInterval())
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
[physics]
gravity = 0.5
iterations = 12

[capacity]
points = 64

[sandbox]
tick_ms = 20
log_level = "debug"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, 12, cfg.Physics.Iterations)
	assert.Equal(t, 64, cfg.Capacity.Points)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())

	// Untouched fields keep defaults
	assert.Equal(t, parameter.Friction, cfg.Physics.Friction)
	assert.Equal(t, parameter.ExplosionRadius, cfg.Explosion.Radius)

	level, err := cfg.Sandbox.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
[physics]
gravty = 0.5
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics.gravty")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`[physics`))
	require.Error(t, err)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Physics.Friction = 1.5
	cfg.Physics.Iterations = 0
	cfg.Capacity.Points = 0
	cfg.Sandbox.LogLevel = "chatty"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "physics.friction")
	assert.Contains(t, msg, "physics.iterations")
	assert.Contains(t, msg, "capacity.points")
	assert.Contains(t, msg, "sandbox.log_level")
}

func TestValidateBreakFactorMustExceedOne(t *testing.T) {
	cfg := Default()
	cfg.Physics.StickBreakFactor = 1.0
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte("[explosion]\nradius = 20.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Explosion.Radius)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateRejectsSubCellWorld(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0.5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "world.width")
}
