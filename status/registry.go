package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the central metrics facade
// Owners cache pointers at construction; tick loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies current values into plain maps for logging and overlays
func (r *Registry) Snapshot() (ints map[string]int64, floats map[string]float64) {
	ints = make(map[string]int64, r.Ints.Count())
	floats = make(map[string]float64, r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		floats[key] = ptr.Get()
	})
	return ints, floats
}

// LogValue groups every metric under its key so a registry can be logged as one attribute
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		attrs = append(attrs, slog.Int64(key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		attrs = append(attrs, slog.Float64(key, ptr.Get()))
	})
	return slog.GroupValue(attrs...)
}
