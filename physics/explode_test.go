package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

func TestExplodeLeavesDistantPointsAlone(t *testing.T) {
	w := newTestWorld(t)
	far := mustPoint(t, w, 80, 20, PointOpts{})
	edge := mustPoint(t, w, 65, 20, PointOpts{})
	before := []Point{*w.Point(far), *w.Point(edge)}

	w.Explode(50, 20)

	assert.Equal(t, before[0], *w.Point(far))
	assert.Equal(t, before[1], *w.Point(edge))
}

func TestExplodePushesOutward(t *testing.T) {
	w := newTestWorld(t)
	i := mustPoint(t, w, 53, 24, PointOpts{})

	w.Explode(50, 20)

	p := w.Point(i)
	// Position untouched; impulse lives in the old position
	assert.Equal(t, 53.0, p.X)
	assert.Equal(t, 24.0, p.Y)

	vx, vy := p.Velocity()
	impulse := vmath.V2(vx, vy)
	away := vmath.V2(3, 4)
	assert.Positive(t, impulse.X)
	assert.Positive(t, impulse.Y)
	assert.InDelta(t, 0, impulse.X*away.Y-impulse.Y*away.X, 1e-9)

	// (R-d)/d*power scaled by the offset
	force := (15.0 - 5.0) / 5.0 * 2.5
	assert.InDelta(t, 3*force, vx, 1e-9)
	assert.InDelta(t, 4*force, vy, 1e-9)
}

func TestExplodeSkipsEpicenterPoint(t *testing.T) {
	w := newTestWorld(t)
	i := mustPoint(t, w, 50, 20, PointOpts{})

	w.Explode(50, 20)

	vx, vy := w.Point(i).Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestExplodeUnlocksNearbyRagdollPoints(t *testing.T) {
	w := newTestWorld(t)
	near := mustPoint(t, w, 52, 20, PointOpts{Locked: true, Ragdoll: true})
	far := mustPoint(t, w, 58, 20, PointOpts{Locked: true, Ragdoll: true})
	anchor := mustPoint(t, w, 51, 20, PointOpts{Locked: true})

	w.Explode(50, 20)

	assert.False(t, w.Point(near).Locked)
	assert.True(t, w.Point(far).Locked)
	assert.True(t, w.Point(anchor).Locked)
}

func TestExplodeDestroysTallWallsInRange(t *testing.T) {
	w := newTestWorld(t)
	tall, _ := w.AddBox(55, 20, 2, 10, true, true)
	short, _ := w.AddBox(45, 20, 10, 4, true, true)
	distant, _ := w.AddBox(62, 20, 2, 10, true, true)
	solid, _ := w.AddBox(50, 25, 2, 10, true, false)

	w.Explode(50, 20)

	assert.False(t, w.Box(tall).Active)
	assert.True(t, w.Box(short).Active)
	assert.True(t, w.Box(distant).Active)
	assert.True(t, w.Box(solid).Active)
}

func TestExplodeBreaksNearbyStructuralSticks(t *testing.T) {
	q := event.NewQueue()
	w := newTestWorld(t)
	w.events = event.NewEmitter(q)

	a := mustPoint(t, w, 48, 20, PointOpts{})
	b := mustPoint(t, w, 52, 20, PointOpts{})
	c := mustPoint(t, w, 48, 22, PointOpts{Ragdoll: true})
	d := mustPoint(t, w, 52, 22, PointOpts{Ragdoll: true})
	e := mustPoint(t, w, 60, 20, PointOpts{})
	f := mustPoint(t, w, 64, 20, PointOpts{})

	plank := mustStick(t, w, a, b, false)
	limb := mustStick(t, w, c, d, true)
	distant := mustStick(t, w, e, f, false)

	w.Explode(50, 20)

	s, _ := w.Stick(plank)
	assert.False(t, s.Active)
	s, _ = w.Stick(limb)
	assert.True(t, s.Active)
	s, _ = w.Stick(distant)
	assert.True(t, s.Active)

	var breaks, blasts int
	for _, ev := range q.Consume() {
		switch ev.Type {
		case event.EventStickBreak:
			breaks++
			assert.Equal(t, event.BreakExplosion, ev.Payload.(event.StickBreakPayload).Cause)
		case event.EventExplosion:
			blasts++
			assert.False(t, ev.Payload.(event.ExplosionPayload).Detonation)
		}
	}
	assert.Equal(t, 1, breaks)
	assert.Equal(t, 1, blasts)
	assert.Positive(t, w.ActiveParticleCount())
}

func TestExplodeIsNotCumulative(t *testing.T) {
	w := newTestWorld(t)
	i := mustPoint(t, w, 56, 20, PointOpts{})

	w.Explode(50, 20)
	first := *w.Point(i)
	w.Explode(80, 20)

	assert.Equal(t, first, *w.Point(i))
}
