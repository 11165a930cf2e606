package benchmarks

import (
	"testing"

	"github.com/zkarena/nalloc"
)

// BenchmarkExhaustionPath measures the cost of repeatedly hitting
// exhaustion and resetting, the worst case for a fixed-capacity arena
// under sustained load.
func BenchmarkExhaustionPath(b *testing.B) {
	m, err := nalloc.NewArenaManager(nalloc.WithScratchSize(4096))
	if err != nil {
		b.Fatal(err)
	}
	defer m.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Scratch().Alloc(256, 8) == 0 {
			m.Scratch().Reset()
		}
	}
}

// BenchmarkHighContentionSameEngine measures many goroutines racing the
// same bump engine's CAS loop, the scenario most likely to show retry
// overhead.
func BenchmarkHighContentionSameEngine(b *testing.B) {
	m, err := nalloc.NewArenaManager(nalloc.WithScratchSize(256 << 20))
	if err != nil {
		b.Fatal(err)
	}
	defer m.Release()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if m.Scratch().Alloc(16, 8) == 0 {
				break
			}
		}
	})
}

// BenchmarkSecureWipeCost measures the cost of wiping witness regions of
// increasing size, the overhead a proving session pays between sessions
// that a plain Reset doesn't.
func BenchmarkSecureWipeCost(b *testing.B) {
	sizes := []int{4 << 10, 64 << 10, 1 << 20}
	for _, size := range sizes {
		b.Run(fmtSize(size), func(b *testing.B) {
			m, err := nalloc.NewArenaManager(nalloc.WithWitnessSize(size))
			if err != nil {
				b.Fatal(err)
			}
			defer m.Release()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Witness().Alloc(size/2, 8)
				m.Witness().SecureWipe()
			}
		})
	}
}

// BenchmarkAlignmentPadding measures the worst-case alignment waste from
// repeatedly requesting a small size with a much larger alignment.
func BenchmarkAlignmentPadding(b *testing.B) {
	m, err := nalloc.NewArenaManager(nalloc.WithScratchSize(256 << 20))
	if err != nil {
		b.Fatal(err)
	}
	defer m.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Scratch().Alloc(1, 4096) == 0 {
			m.Scratch().Reset()
		}
	}
}

func fmtSize(n int) string {
	switch {
	case n >= 1<<20:
		return "mb"
	case n >= 1<<10:
		return "kb"
	default:
		return "b"
	}
}
