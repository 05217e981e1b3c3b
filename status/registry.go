package status

import "sync/atomic"

// Metric keys
const (
	SchedulerTicks  = "scheduler.ticks"
	SchedulerTasks  = "scheduler.tasks"
	SchedulerFaults = "scheduler.faults"
	SchedulerTickMs = "scheduler.tick_ms"
	LauncherShots   = "launcher.shots"
	LauncherDropped = "launcher.dropped"
)

// Registry holds the scene's counters and gauges
// Tasks cache pointers at construction and write atomics directly
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

// Snapshot copies every metric into a map, suitable for logrus.Fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}
