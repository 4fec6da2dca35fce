package physics

// StepReport summarizes one physics tick for feedback consumers
type StepReport struct {
	// Broken is the active stick delta over the tick, covering overstretch and detonation breaks
	Broken      int
	Detonations int

	ActiveSticksBefore int
	ActiveSticksAfter  int
}

// StepPhysics runs one full tick to completion
// Integrate, one box pass, the relaxation iterations, then a single point de-overlap pass
func (w *World) StepPhysics() StepReport {
	w.frame++
	before := w.ActiveStickCount()

	detonations := w.Integrate()
	w.ResolveBoxCollisions()
	w.SolveConstraints()
	w.ResolvePointCollisions()

	after := w.ActiveStickCount()
	w.statTicks.Add(1)

	return StepReport{
		Broken:             before - after,
		Detonations:        detonations,
		ActiveSticksBefore: before,
		ActiveSticksAfter:  after,
	}
}
