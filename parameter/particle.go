package parameter

// Cosmetic particle dynamics
const (
	ParticleGravity      = 0.1
	ParticleLifeMin      = 20
	ParticleLifeVariance = 20
	ParticleFloorBounce  = 0.5
	ParticleFloorDrag    = 0.7
)

// Burst sizes and speeds per feedback effect
const (
	ExplosionCoreCount   = 30
	ExplosionCoreSpeed   = 2.5
	ExplosionFireCount   = 20
	ExplosionFireSpeed   = 2.0
	ExplosionFireJitter  = 2
	ExplosionSmokeCount  = 15
	ExplosionSmokeSpeed  = 1.0
	ExplosionSmokeJitter = 3
	ExplosionSparkCount  = 10
	ExplosionSparkSpeed  = 3.0

	BreakDebrisCount = 5
	BreakDashSpeed   = 1.0
	BreakBarSpeed    = 0.8

	SuccessCount = 20
	SuccessSpeed = 1.5

	CoinBurstCount = 10
	CoinBurstSpeed = 1.0
)
