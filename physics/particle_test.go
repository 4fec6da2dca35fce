package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

func TestSpawnParticleFillsFirstFreeSlot(t *testing.T) {
	w := newTestWorld(t)
	require.True(t, w.SpawnParticle(10, 10, ParticleSpark, 2))
	require.True(t, w.SpawnParticle(20, 10, ParticleSmoke, 2))

	w.particles[0].Active = false
	require.True(t, w.SpawnParticle(30, 10, ParticleCoin, 2))

	p := w.Particles()[0]
	assert.Equal(t, ParticleCoin, p.Kind)
	assert.Equal(t, 30.0, p.X)
	assert.GreaterOrEqual(t, p.Life, parameter.ParticleLifeMin)
	assert.Less(t, p.Life, parameter.ParticleLifeMin+parameter.ParticleLifeVariance)
	assert.Equal(t, p.Life, p.MaxLife)
	assert.InDelta(t, 1.0, p.LifeFraction(), 1e-12)
}

func TestSpawnParticlePoolExhaustion(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Capacity.Particles = 3 })
	for range 3 {
		require.True(t, w.SpawnParticle(10, 10, ParticleDebris, 1))
	}
	assert.False(t, w.SpawnParticle(10, 10, ParticleDebris, 1))
}

func TestBurstSizes(t *testing.T) {
	tests := []struct {
		name  string
		spawn func(w *World)
		want  int
	}{
		{"explosion", func(w *World) { w.SpawnExplosionParticles(60, 20) },
			parameter.ExplosionCoreCount + parameter.ExplosionFireCount + parameter.ExplosionSmokeCount + parameter.ExplosionSparkCount},
		{"break", func(w *World) { w.SpawnBreakParticles(60, 20) }, 2 * parameter.BreakDebrisCount},
		{"success", func(w *World) { w.SpawnSuccessParticles(60, 20) }, parameter.SuccessCount},
		{"coin", func(w *World) { w.SpawnCoinParticles(60, 20) }, parameter.CoinBurstCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			tt.spawn(w)
			assert.Equal(t, tt.want, w.ActiveParticleCount())
		})
	}
}

func TestExplosionJitterBounded(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnExplosionParticles(60, 20)

	for _, p := range w.Particles() {
		if !p.Active {
			continue
		}
		assert.LessOrEqual(t, p.X-60, float64(parameter.ExplosionSmokeJitter))
		assert.GreaterOrEqual(t, p.X-60, -float64(parameter.ExplosionSmokeJitter))
	}
}

func TestUpdateParticlesExpire(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnCoinParticles(60, 10)

	maxLife := parameter.ParticleLifeMin + parameter.ParticleLifeVariance
	for range maxLife {
		w.UpdateParticles()
	}
	assert.Zero(t, w.ActiveParticleCount())
}

func TestUpdateParticlesFloorBounce(t *testing.T) {
	w := newTestWorld(t)
	require.True(t, w.SpawnParticle(60, 38.5, ParticleDebris, 0))
	p := &w.particles[0]
	p.VX, p.VY = 1, 1

	w.UpdateParticles()

	assert.Equal(t, 38.0, p.Y)
	assert.InDelta(t, -0.55, p.VY, 1e-12)
	assert.InDelta(t, 0.7, p.VX, 1e-12)
}

func TestSuccessBurstMixesKinds(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnSuccessParticles(60, 20)

	seen := map[ParticleKind]int{}
	for _, p := range w.Particles() {
		if p.Active {
			seen[p.Kind]++
		}
	}
	for kind := range seen {
		assert.Contains(t, successKinds[:], kind)
	}
	assert.Greater(t, len(seen), 1)
}
