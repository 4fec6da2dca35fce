package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

func separation(w *World, a, b int) float64 {
	pa, pb := w.Point(a), w.Point(b)
	return vmath.Dist(pa.X, pa.Y, pb.X, pb.Y)
}

func TestLockedAnchorStickAtRest(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 10, 13, PointOpts{})
	mustStick(t, w, a, b, false)
	require.NoError(t, w.SetLocked(a, true))
	require.NoError(t, w.SetLocked(b, false))

	broken := w.SolveConstraints()

	assert.Zero(t, broken)
	assert.InDelta(t, 3.0, separation(w, a, b), 1e-9)
	assert.Equal(t, 10.0, w.Point(a).X)
	assert.Equal(t, 10.0, w.Point(a).Y)
}

func TestStickRelaxationConverges(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{Locked: true})
	b := mustPoint(t, w, 10, 13, PointOpts{})
	mustStick(t, w, a, b, false)

	// Stretch to twice the rest length; well under the break threshold
	w.Point(b).Y = 16

	prev := math.Abs(separation(w, a, b) - 3)
	for i := 0; i < 8; i++ {
		require.Zero(t, w.relaxSticks())
		errNow := math.Abs(separation(w, a, b) - 3)
		assert.Less(t, errNow, prev)
		prev = errNow
	}

	// Only the free endpoint moves, by half the error per pass
	assert.InDelta(t, 3.0/256, prev, 1e-9)
	assert.Equal(t, 10.0, w.Point(a).Y)
}

func TestStickCorrectionSplitsBetweenFreeEndpoints(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 14, 10, PointOpts{})
	mustStick(t, w, a, b, false)

	w.Point(a).X = 9
	w.Point(b).X = 15
	w.relaxSticks()

	assert.InDelta(t, 10.0, w.Point(a).X, 1e-12)
	assert.InDelta(t, 14.0, w.Point(b).X, 1e-12)
}

func TestStickBreaksWhenOverstretched(t *testing.T) {
	q := event.NewQueue()
	w := newTestWorld(t)
	w.events = event.NewEmitter(q)

	a := mustPoint(t, w, 10, 10, PointOpts{Locked: true})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	s := mustStick(t, w, a, b, true)

	w.Point(b).X = 16.5
	broken := w.SolveConstraints()
	assert.Equal(t, 1, broken)

	stick, _ := w.Stick(s)
	assert.False(t, stick.Active)
	// No correction applied to a breaking stick
	assert.Equal(t, 16.5, w.Point(b).X)
	assert.Positive(t, w.ActiveParticleCount())

	evs := q.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventStickBreak, evs[0].Type)
	payload := evs[0].Payload.(event.StickBreakPayload)
	assert.Equal(t, s, payload.Stick)
	assert.Equal(t, event.BreakOverstretch, payload.Cause)
	assert.True(t, payload.Ragdoll)
	assert.InDelta(t, 13.25, payload.X, 1e-12)
}

func TestBrokenStickStaysBroken(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{Locked: true})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	s := mustStick(t, w, a, b, false)

	w.Point(b).X = 20
	w.StepPhysics()

	// Back at rest length; the stick must not revive
	p := w.Point(b)
	p.X, p.Y, p.OldX, p.OldY = 12, 10, 12, 10
	for range 20 {
		w.StepPhysics()
		stick, _ := w.Stick(s)
		require.False(t, stick.Active)
	}
}

func TestStickSkippedWhenEndpointInactive(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	s := mustStick(t, w, a, b, false)
	require.NoError(t, w.RemovePoint(b))

	w.Point(a).X = 0.5
	w.relaxSticks()

	stick, _ := w.Stick(s)
	assert.True(t, stick.Active)
	assert.Equal(t, 0.5, w.Point(a).X)
}

func TestStickSkippedAtNearZeroSeparation(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	mustStick(t, w, a, b, false)

	w.Point(b).X = 10.0001
	w.relaxSticks()

	assert.Equal(t, 10.0, w.Point(a).X)
	assert.Equal(t, 10.0001, w.Point(b).X)
}

func TestBreakStick(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{})
	b := mustPoint(t, w, 12, 10, PointOpts{})
	s := mustStick(t, w, a, b, false)

	require.NoError(t, w.BreakStick(s))
	require.NoError(t, w.BreakStick(s))
	stick, _ := w.Stick(s)
	assert.False(t, stick.Active)
	assert.ErrorIs(t, w.BreakStick(9), ErrInvalidIndex)
}

func TestBoxEjectsThroughNearestEdge(t *testing.T) {
	// Box spans x [45,55], y [18,22]
	tests := []struct {
		name         string
		x, y         float64
		oldX, oldY   float64
		wantX, wantY float64
		wantOldX     float64
		wantOldY     float64
	}{
		{"left", 46, 20, 45.5, 20, 44, 20, 44.3, 20},
		{"right", 54, 20, 54.5, 20, 56, 20, 55.7, 20},
		{"top", 50, 18.5, 50, 18, 50, 17, 50, 17.3},
		{"bottom", 50, 21.5, 50, 21, 50, 23, 50, 23.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			_, err := w.AddBox(50, 20, 10, 4, true, false)
			require.NoError(t, err)
			i := mustPoint(t, w, tt.x, tt.y, PointOpts{Radius: 1})
			p := w.Point(i)
			p.OldX, p.OldY = tt.oldX, tt.oldY

			w.ResolveBoxCollisions()

			assert.InDelta(t, tt.wantX, p.X, 1e-12)
			assert.InDelta(t, tt.wantY, p.Y, 1e-12)
			assert.InDelta(t, tt.wantOldX, p.OldX, 1e-12)
			assert.InDelta(t, tt.wantOldY, p.OldY, 1e-12)
		})
	}
}

func TestBoxTieResolvesLeftFirst(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.AddBox(50, 20, 6, 6, true, false)
	require.NoError(t, err)
	i := mustPoint(t, w, 50, 20, PointOpts{Radius: 0.5})

	w.ResolveBoxCollisions()

	assert.Equal(t, 46.5, w.Point(i).X)
	assert.Equal(t, 20.0, w.Point(i).Y)
}

func TestBoxIgnoresOutsideLockedAndNonSolid(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.AddBox(50, 20, 10, 4, true, false)
	require.NoError(t, err)
	_, err = w.AddBox(80, 20, 10, 4, false, true)
	require.NoError(t, err)

	outside := mustPoint(t, w, 60, 20, PointOpts{Radius: 1})
	onEdge := mustPoint(t, w, 45, 20, PointOpts{Radius: 1})
	locked := mustPoint(t, w, 50, 20, PointOpts{Radius: 1, Locked: true})
	ghost := mustPoint(t, w, 80, 20, PointOpts{Radius: 1})
	w.Point(outside).OldX = 59.25

	before := make([]Point, len(w.Points()))
	copy(before, w.Points())

	w.ResolveBoxCollisions()

	for _, i := range []int{outside, onEdge, locked, ghost} {
		assert.Equal(t, before[i], *w.Point(i))
	}
}

func TestPointCollisionsSeparateOverlap(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{Radius: 1})
	b := mustPoint(t, w, 11, 10, PointOpts{Radius: 1})

	w.ResolvePointCollisions()

	// Overlap 1 split evenly; old positions untouched
	assert.InDelta(t, 9.5, w.Point(a).X, 1e-12)
	assert.InDelta(t, 11.5, w.Point(b).X, 1e-12)
	assert.Equal(t, 10.0, w.Point(a).OldX)
	assert.Equal(t, 11.0, w.Point(b).OldX)
}

func TestPointCollisionsRespectLock(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{Radius: 1, Locked: true})
	b := mustPoint(t, w, 10, 11, PointOpts{Radius: 1})

	w.ResolvePointCollisions()

	assert.Equal(t, 10.0, w.Point(a).Y)
	assert.InDelta(t, 11.5, w.Point(b).Y, 1e-12)
}

func TestPointCollisionsSkipCoincident(t *testing.T) {
	w := newTestWorld(t)
	a := mustPoint(t, w, 10, 10, PointOpts{Radius: 1})
	b := mustPoint(t, w, 10, 10, PointOpts{Radius: 1})

	w.ResolvePointCollisions()

	assert.Equal(t, 10.0, w.Point(a).X)
	assert.Equal(t, 10.0, w.Point(b).X)
}
