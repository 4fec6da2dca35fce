package physics

import (
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

// CheckRagdollIntegrity reports whether the ragdoll is whole
// False when any ragdoll stick is broken or no ragdoll point remains active
func (w *World) CheckRagdollIntegrity() bool {
	for i := 0; i < w.stickCount; i++ {
		s := &w.sticks[i]
		if s.Ragdoll && !s.Active {
			return false
		}
	}
	for i := 0; i < w.pointCount; i++ {
		p := &w.points[i]
		if p.Ragdoll && p.Active {
			return true
		}
	}
	return false
}

// CheckRagdollInTarget reports whether any active ragdoll point lies strictly inside target t
// Out of range targets report false
func (w *World) CheckRagdollInTarget(t int) bool {
	if t < 0 || t >= w.targetCount {
		return false
	}
	tg := &w.targets[t]
	r2 := tg.Radius * tg.Radius
	for i := 0; i < w.pointCount; i++ {
		p := &w.points[i]
		if !p.Active || !p.Ragdoll {
			continue
		}
		if vmath.DistSq(p.X, p.Y, tg.X, tg.Y) < r2 {
			return true
		}
	}
	return false
}

// UpdateTargets latches every active target the ragdoll has newly entered
// Returns the indices that transitioned this call
func (w *World) UpdateTargets() []int {
	var reached []int
	for i := 0; i < w.targetCount; i++ {
		tg := &w.targets[i]
		if !tg.Active || tg.Touching {
			continue
		}
		if !w.CheckRagdollInTarget(i) {
			continue
		}

		tg.Touching = true
		reached = append(reached, i)

		w.SpawnSuccessParticles(tg.X, tg.Y)
		w.statTargetsReached.Add(1)
		w.emit(event.EventTargetReached, event.TargetPayload{Target: i, X: tg.X, Y: tg.Y})
		w.logger.Info("target reached", "target", i, "frame", w.frame)
	}
	return reached
}

// ResetTargets clears every latch for a new attempt
func (w *World) ResetTargets() {
	for i := 0; i < w.targetCount; i++ {
		w.targets[i].Touching = false
	}
}

// AllTargetsReached is true when at least one active target exists and all are latched
func (w *World) AllTargetsReached() bool {
	found := false
	for i := 0; i < w.targetCount; i++ {
		tg := &w.targets[i]
		if !tg.Active {
			continue
		}
		if !tg.Touching {
			return false
		}
		found = true
	}
	return found
}

// TargetsReached counts latched active targets
func (w *World) TargetsReached() int {
	n := 0
	for i := 0; i < w.targetCount; i++ {
		if w.targets[i].Active && w.targets[i].Touching {
			n++
		}
	}
	return n
}
