package nalloc

import "github.com/prometheus/client_golang/prometheus"

// ArenaStats is a point-in-time snapshot of a single arena's usage.
type ArenaStats struct {
	Capacity    int
	Used        int
	Remaining   int
	Utilization float64 // Used / Capacity, 0 when Capacity is 0
}

func arenaStats(capacity, used int) ArenaStats {
	s := ArenaStats{Capacity: capacity, Used: used, Remaining: capacity - used}
	if capacity > 0 {
		s.Utilization = float64(used) / float64(capacity)
	}
	return s
}

// Stats snapshots all three arenas an ArenaManager owns.
type Stats struct {
	Witness    ArenaStats
	Polynomial ArenaStats
	Scratch    ArenaStats
}

// Prometheus returns a set of collectors reporting this snapshot. These are
// not auto-registered with any registry: callers that want them exported
// register them explicitly, e.g. prometheus.MustRegister(m.Stats().Prometheus()...).
func (s Stats) Prometheus() []prometheus.Collector {
	gauge := func(name, help string, arena ArenaStats) prometheus.Collector {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nalloc",
			Name:      name,
			Help:      help,
		})
		g.Set(float64(arena.Used))
		return g
	}
	return []prometheus.Collector{
		gauge("witness_bytes_used", "Bytes currently allocated in the witness arena.", s.Witness),
		gauge("polynomial_bytes_used", "Bytes currently allocated in the polynomial arena.", s.Polynomial),
		gauge("scratch_bytes_used", "Bytes currently allocated in the scratch arena.", s.Scratch),
	}
}
