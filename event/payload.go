package event

// BreakCause identifies what disconnected a stick
type BreakCause uint8

const (
	BreakOverstretch BreakCause = iota
	BreakExplosion
	BreakScripted
)

func (c BreakCause) String() string {
	switch c {
	case BreakOverstretch:
		return "overstretch"
	case BreakExplosion:
		return "explosion"
	case BreakScripted:
		return "scripted"
	}
	return "unknown"
}

// StickBreakPayload locates a broken stick at its midpoint
type StickBreakPayload struct {
	Stick   int
	X, Y    float64
	Ragdoll bool
	Cause   BreakCause
}

// ExplosionPayload locates the epicenter
// Detonation is true when an explosive point triggered it on floor contact
type ExplosionPayload struct {
	X, Y       float64
	Detonation bool
}

// TargetPayload identifies the target that latched
type TargetPayload struct {
	Target int
	X, Y   float64
}

// SpawnKind identifies the placed prefab
type SpawnKind uint8

const (
	SpawnRagdoll SpawnKind = iota
	SpawnBomb
	SpawnRope
	SpawnPlatform
	SpawnCrate
	SpawnCoin
	SpawnTerrain
)

var spawnNames = [...]string{
	SpawnRagdoll:  "ragdoll",
	SpawnBomb:     "bomb",
	SpawnRope:     "rope",
	SpawnPlatform: "platform",
	SpawnCrate:    "crate",
	SpawnCoin:     "coin",
	SpawnTerrain:  "terrain",
}

func (k SpawnKind) String() string {
	if int(k) < len(spawnNames) {
		return spawnNames[k]
	}
	return "unknown"
}

// SpawnPayload identifies a placed prefab and its anchor
type SpawnPayload struct {
	Kind SpawnKind
	X, Y float64
}

// CoinPayload locates a collected coin
type CoinPayload struct {
	Point int
	X, Y  float64
}
