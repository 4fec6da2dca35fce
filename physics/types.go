package physics

import "github.com/lixenwraith/ragdoll-sandbox/vmath"

// InvalidIndex is returned by the Add operations when the entity was not created
const InvalidIndex = -1

// Tag is display data carried for the renderer; physics never reads it
type Tag struct {
	Glyph rune
	Color int
}

// Point is a point-mass with implicit velocity (X-OldX, Y-OldY)
// OldX/OldY are only written by corrections that mean to keep, add or remove energy
type Point struct {
	X, Y       float64
	OldX, OldY float64
	Radius     float64

	Locked bool // Pinned: excluded from integration and all corrections
	Active bool // Cleared on deletion, never set again

	Ragdoll     bool // Member of the tracked articulated body
	SpecialHead bool // Cosmetic, preserved for consumers
	Explosive   bool // Detonates on floor contact

	Tag Tag
}

// Velocity returns the implicit per-tick velocity
func (p *Point) Velocity() (vx, vy float64) {
	return p.X - p.OldX, p.Y - p.OldY
}

// Pos returns current position as a vector
func (p *Point) Pos() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// PointOpts carries the optional properties of a new point
type PointOpts struct {
	Radius      float64
	Locked      bool
	Ragdoll     bool
	SpecialHead bool
	Explosive   bool
	Tag         Tag
}

// Stick is a breakable distance constraint between two point indices
// Length is fixed at creation; a broken stick is never reactivated
type Stick struct {
	P1, P2  int
	Length  float64
	Active  bool
	Ragdoll bool
}

// Box is an axis-aligned rectangle given by center and size
type Box struct {
	X, Y          float64
	Width, Height float64
	Active        bool
	Solid         bool // Participates in point containment
	Wall          bool // Removable by explosions
}

// Bounds returns the rectangle edges
func (b *Box) Bounds() (left, right, top, bottom float64) {
	halfW := b.Width / 2
	halfH := b.Height / 2
	return b.X - halfW, b.X + halfW, b.Y - halfH, b.Y + halfH
}

// Target is a circular goal zone
// Touching latches the first time a ragdoll point enters and stays set until ResetTargets
type Target struct {
	X, Y     float64
	Radius   float64
	Active   bool
	Touching bool
}

// ParticleKind selects particle presentation for the renderer
type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleSplinter
	ParticleFire
	ParticleEmber
	ParticleSmoke
	ParticleSpark
	ParticleSparkle
	ParticleCoin
	ParticleStar
	ParticleGlint
)

// successKinds are mixed at random in the celebration burst
var successKinds = [...]ParticleKind{ParticleSparkle, ParticleStar, ParticleGlint}

// Particle is a cosmetic Euler-integrated effect, outside the constraint solver
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Kind    ParticleKind
	Active  bool
}

// LifeFraction returns remaining life in [0,1] for fading
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
