package scene

import (
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

// Ragdoll holds the point and stick indices of one spawned body
type Ragdoll struct {
	Head, Neck, Chest, Hips int
	LeftHand, RightHand     int
	LeftKnee, RightKnee     int
	LeftFoot, RightFoot     int

	Sticks []int
}

// Points returns every body point index, head first
func (r Ragdoll) Points() []int {
	return []int{
		r.Head, r.Neck, r.Chest, r.Hips,
		r.LeftHand, r.RightHand,
		r.LeftKnee, r.RightKnee,
		r.LeftFoot, r.RightFoot,
	}
}

var coinTag = physics.Tag{Glyph: '$', Color: ColorYellow}

const (
	ragdollPoints = 10
	ragdollSticks = 9
)

// SpawnRagdoll places a stick figure with its head at (x, y)
func (b *Builder) SpawnRagdoll(x, y float64) (Ragdoll, error) {
	if err := b.begin(event.SpawnRagdoll, ragdollPoints, ragdollSticks, 0); err != nil {
		return Ragdoll{}, err
	}

	part := func(dx, dy, radius float64, glyph rune, color int) int {
		return b.point(x+dx, y+dy, physics.PointOpts{
			Radius:  radius,
			Ragdoll: true,
			Tag:     physics.Tag{Glyph: glyph, Color: color},
		})
	}

	r := Ragdoll{
		Head: b.point(x, y, physics.PointOpts{
			Radius:      1.2,
			Ragdoll:     true,
			SpecialHead: true,
			Tag:         b.head,
		}),
		Neck:      part(0, 3, 0.8, '|', ColorWhite),
		Chest:     part(0, 6, 1.2, '#', ColorCyan),
		Hips:      part(0, 10, 1.0, 'V', ColorCyan),
		LeftHand:  part(-5, 8, 0.8, '[', ColorWhite),
		RightHand: part(5, 8, 0.8, ']', ColorWhite),
		LeftKnee:  part(-3, 14, 0.8, '/', ColorWhite),
		RightKnee: part(3, 14, 0.8, '\\', ColorWhite),
		LeftFoot:  part(-3, 18, 0.9, '/', ColorWhite),
		RightFoot: part(3, 18, 0.9, '\\', ColorWhite),
	}

	joints := [ragdollSticks][2]int{
		{r.Head, r.Neck},
		{r.Neck, r.Chest},
		{r.Chest, r.Hips},
		{r.Neck, r.LeftHand},
		{r.Neck, r.RightHand},
		{r.Hips, r.LeftKnee},
		{r.Hips, r.RightKnee},
		{r.LeftKnee, r.LeftFoot},
		{r.RightKnee, r.RightFoot},
	}
	r.Sticks = make([]int, 0, ragdollSticks)
	for _, j := range joints {
		r.Sticks = append(r.Sticks, b.stick(j[0], j[1], true))
	}

	b.statRagdolls.Add(1)
	b.done(event.SpawnRagdoll, x, y)
	return r, nil
}

// SpawnBomb places an explosive point that detonates on floor contact
func (b *Builder) SpawnBomb(x, y float64) (int, error) {
	if err := b.begin(event.SpawnBomb, 1, 0, 0); err != nil {
		return physics.InvalidIndex, err
	}
	idx := b.point(x, y, physics.PointOpts{
		Radius:    parameter.BombRadius,
		Explosive: true,
		Tag:       physics.Tag{Glyph: '@', Color: ColorRed},
	})
	b.done(event.SpawnBomb, x, y)
	return idx, nil
}

// SpawnRope hangs a chain between two pinned endpoints
// Returns the point indices from (x1, y1) to (x2, y2)
func (b *Builder) SpawnRope(x1, y1, x2, y2 float64) ([]int, error) {
	n := parameter.RopeSegments
	if err := b.begin(event.SpawnRope, n+1, n, 0); err != nil {
		return nil, err
	}

	dx := (x2 - x1) / float64(n)
	dy := (y2 - y1) / float64(n)
	end := physics.Tag{Glyph: 'O', Color: ColorYellow}
	link := physics.Tag{Glyph: '.', Color: ColorYellow}

	points := make([]int, 0, n+1)
	points = append(points, b.point(x1, y1, physics.PointOpts{Radius: parameter.RopeRadius, Locked: true, Tag: end}))
	for i := 1; i <= n; i++ {
		last := i == n
		tag := link
		if last {
			tag = end
		}
		p := b.point(x1+dx*float64(i), y1+dy*float64(i), physics.PointOpts{
			Radius: parameter.RopeRadius,
			Locked: last,
			Tag:    tag,
		})
		b.stick(points[len(points)-1], p, false)
		points = append(points, p)
	}

	b.done(event.SpawnRope, x1, y1)
	return points, nil
}

// SpawnPlatform lays a pinned plank centered on x with a solid wall box beneath
// Returns the plank point indices and the box index
func (b *Builder) SpawnPlatform(x, y float64, width int) ([]int, int, error) {
	segments := width / parameter.PlatformSpacing
	if segments < 1 {
		segments = 1
	}
	if err := b.begin(event.SpawnPlatform, segments+1, segments, 1); err != nil {
		return nil, physics.InvalidIndex, err
	}

	startX := x - float64(width/2)
	tag := physics.Tag{Glyph: '=', Color: ColorGreen}

	points := make([]int, 0, segments+1)
	for i := 0; i <= segments; i++ {
		px := startX + float64(i*width)/float64(segments)
		p := b.point(px, y, physics.PointOpts{Radius: parameter.PlatformRadius, Locked: true, Tag: tag})
		if i > 0 {
			b.stick(points[i-1], p, false)
		}
		points = append(points, p)
	}

	box, _ := b.world.AddBox(x, y+parameter.PlatformBoxOffset, float64(width), parameter.PlatformBoxHeight, true, true)

	b.done(event.SpawnPlatform, x, y)
	return points, box, nil
}

// SpawnCrate builds a braced 3x3 lattice centered on (x, y)
func (b *Builder) SpawnCrate(x, y float64) ([]int, error) {
	const side = 3
	// Right, down, diagonal and anti-diagonal braces
	const sticks = 2*side*(side-1) + 2*(side-1)*(side-1)
	if err := b.begin(event.SpawnCrate, side*side, sticks, 0); err != nil {
		return nil, err
	}

	size := parameter.CrateSpacing
	tag := physics.Tag{Glyph: '#', Color: ColorMagenta}

	points := make([]int, 0, side*side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			px := x - size + float64(col)*size
			py := y - size + float64(row)*size
			points = append(points, b.point(px, py, physics.PointOpts{Radius: parameter.CrateRadius, Tag: tag}))
		}
	}

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			i := row*side + col
			if col < side-1 {
				b.stick(points[i], points[i+1], false)
			}
			if row < side-1 {
				b.stick(points[i], points[i+side], false)
			}
			if row < side-1 && col < side-1 {
				b.stick(points[i], points[i+side+1], false)
			}
			if row < side-1 && col > 0 {
				b.stick(points[i], points[i+side-1], false)
			}
		}
	}

	b.done(event.SpawnCrate, x, y)
	return points, nil
}

// SpawnCoin places a collectible; coins are level dressing and skip the undo history
func (b *Builder) SpawnCoin(x, y float64) (int, error) {
	if err := b.reserve(event.SpawnCoin, 1, 0, 0); err != nil {
		return physics.InvalidIndex, err
	}
	idx := b.point(x, y, physics.PointOpts{
		Radius: parameter.CoinRadius,
		Tag:    coinTag,
	})
	b.coins = append(b.coins, idx)
	b.done(event.SpawnCoin, x, y)
	return idx, nil
}

// CollectCoins removes every coin an active ragdoll point is touching
// Returns the number collected this call
func (b *Builder) CollectCoins() int {
	w := b.world
	points := w.Points()
	collected := 0

	remaining := b.coins[:0]
	for _, c := range b.coins {
		// Undo can drop a coin or hand its slot to another point
		if c >= len(points) || !points[c].Active || points[c].Tag != coinTag {
			continue
		}
		coin := &points[c]
		if !ragdollNear(points, coin.X, coin.Y, parameter.CoinPickupRadius) {
			remaining = append(remaining, c)
			continue
		}

		_ = w.RemovePoint(c)
		w.SpawnCoinParticles(coin.X, coin.Y)
		b.statCoins.Add(1)
		b.events.Emit(event.EventCoinCollected, event.CoinPayload{Point: c, X: coin.X, Y: coin.Y}, w.Frame())
		collected++
	}
	b.coins = remaining
	return collected
}

// Coins returns the indices of uncollected coins
func (b *Builder) Coins() []int {
	return b.coins
}

// Reset forgets tracked coins; call after World.ClearWorld
func (b *Builder) Reset() {
	b.coins = b.coins[:0]
}

func ragdollNear(points []physics.Point, x, y, radius float64) bool {
	r2 := radius * radius
	for i := range points {
		p := &points[i]
		if !p.Active || !p.Ragdoll {
			continue
		}
		if vmath.DistSq(p.X, p.Y, x, y) < r2 {
			return true
		}
	}
	return false
}
