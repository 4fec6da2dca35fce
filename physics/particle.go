package physics

import (
	"math"

	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

// SpawnParticle fills the first free slot with a particle flying at a random angle
// Speed is the upper bound; the actual magnitude is uniform in [0, speed)
// Returns false when the pool is exhausted
func (w *World) SpawnParticle(x, y float64, kind ParticleKind, speed float64) bool {
	for i := range w.particles {
		p := &w.particles[i]
		if p.Active {
			continue
		}

		angle := w.rng.Float64() * 2 * math.Pi
		force := w.rng.Float64() * speed
		life := parameter.ParticleLifeMin + w.rng.IntN(parameter.ParticleLifeVariance)

		*p = Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * force,
			VY:      math.Sin(angle) * force,
			Life:    life,
			MaxLife: life,
			Kind:    kind,
			Active:  true,
		}
		return true
	}
	return false
}

// jitter returns an integer offset in [-n, n]
func (w *World) jitter(n int) float64 {
	return float64(w.rng.IntN(2*n+1) - n)
}

// SpawnExplosionParticles emits the layered blast burst: core, fire, smoke, sparks
func (w *World) SpawnExplosionParticles(x, y float64) {
	for range parameter.ExplosionCoreCount {
		w.SpawnParticle(x, y, ParticleFire, parameter.ExplosionCoreSpeed)
	}
	for range parameter.ExplosionFireCount {
		jx, jy := w.jitter(parameter.ExplosionFireJitter), w.jitter(parameter.ExplosionFireJitter)
		w.SpawnParticle(x+jx, y+jy, ParticleEmber, parameter.ExplosionFireSpeed)
	}
	for range parameter.ExplosionSmokeCount {
		jx, jy := w.jitter(parameter.ExplosionSmokeJitter), w.jitter(parameter.ExplosionSmokeJitter)
		w.SpawnParticle(x+jx, y+jy, ParticleSmoke, parameter.ExplosionSmokeSpeed)
	}
	for range parameter.ExplosionSparkCount {
		w.SpawnParticle(x, y, ParticleSpark, parameter.ExplosionSparkSpeed)
	}
}

// SpawnBreakParticles emits debris at a broken stick's midpoint
func (w *World) SpawnBreakParticles(x, y float64) {
	for range parameter.BreakDebrisCount {
		w.SpawnParticle(x, y, ParticleDebris, parameter.BreakDashSpeed)
		w.SpawnParticle(x, y, ParticleSplinter, parameter.BreakBarSpeed)
	}
}

// SpawnSuccessParticles emits the celebration burst
func (w *World) SpawnSuccessParticles(x, y float64) {
	for range parameter.SuccessCount {
		kind := successKinds[w.rng.IntN(len(successKinds))]
		w.SpawnParticle(x, y, kind, parameter.SuccessSpeed)
	}
}

// SpawnCoinParticles emits the pickup burst
func (w *World) SpawnCoinParticles(x, y float64) {
	for range parameter.CoinBurstCount {
		w.SpawnParticle(x, y, ParticleCoin, parameter.CoinBurstSpeed)
	}
}

// UpdateParticles advances every live particle one tick
// Euler step with a downward bias, damped bounce on the floor
func (w *World) UpdateParticles() {
	floor := w.height - 1
	for i := range w.particles {
		p := &w.particles[i]
		if !p.Active {
			continue
		}

		p.X += p.VX
		p.Y += p.VY
		p.VY += parameter.ParticleGravity

		p.Life--
		if p.Life <= 0 {
			p.Active = false
		}

		if p.Y >= floor {
			p.Y = floor - 1
			p.VY = -p.VY * parameter.ParticleFloorBounce
			p.VX *= parameter.ParticleFloorDrag
		}
	}
}

// ActiveParticleCount counts live particles
func (w *World) ActiveParticleCount() int {
	n := 0
	for i := range w.particles {
		if w.particles[i].Active {
			n++
		}
	}
	return n
}
