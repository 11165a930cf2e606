package nalloc

import (
	"sync"
	"testing"
)

func TestFacadeLazyInit(t *testing.T) {
	f := NewFacade(WithWitnessSize(4096), WithPolynomialSize(4096), WithScratchSize(4096))
	defer f.Close()

	if f.mgr.Load() != nil {
		t.Fatal("Facade created an ArenaManager before first use")
	}
	_ = f.Witness()
	if f.mgr.Load() == nil {
		t.Fatal("Facade did not initialize on first use")
	}
}

func TestFacadeConcurrentInitConvergesOnOneManager(t *testing.T) {
	f := NewFacade(WithWitnessSize(4096), WithPolynomialSize(4096), WithScratchSize(4096))
	defer f.Close()

	const workers = 32
	managers := make([]*ArenaManager, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			m, err := f.Manager()
			if err != nil {
				t.Error(err)
				return
			}
			managers[i] = m
		}(i)
	}
	wg.Wait()

	first := managers[0]
	for i, m := range managers {
		if m != first {
			t.Fatalf("worker %d observed a different ArenaManager instance", i)
		}
	}
}

func TestFacadeAllocateRoutesByThreshold(t *testing.T) {
	f := NewFacade(
		WithWitnessSize(4096),
		WithPolynomialSize(2*LargeAllocThreshold),
		WithScratchSize(4096),
	)
	defer f.Close()

	small := f.Allocate(64, 8)
	if small == nil {
		t.Fatal("small Allocate returned nil")
	}
	m, _ := f.Manager()
	if m.Scratch().Used() != 64 {
		t.Errorf("scratch Used() = %d after small Allocate, want 64", m.Scratch().Used())
	}

	large := f.Allocate(LargeAllocThreshold+1, 8)
	if large == nil {
		t.Fatal("large Allocate returned nil")
	}
	if got := m.Polynomial().Used(); got != LargeAllocThreshold+1 {
		t.Errorf("polynomial Used() = %d after large Allocate, want %d", got, LargeAllocThreshold+1)
	}
}

func TestFacadeAllocateRoutesByCustomThreshold(t *testing.T) {
	const threshold = 256
	f := NewFacade(
		WithWitnessSize(4096),
		WithPolynomialSize(4096),
		WithScratchSize(4096),
		WithLargeAllocThreshold(threshold),
	)
	defer f.Close()

	atThreshold := f.Allocate(threshold, 8)
	if atThreshold == nil {
		t.Fatal("Allocate at threshold returned nil")
	}
	m, _ := f.Manager()
	if m.Scratch().Used() != threshold {
		t.Errorf("scratch Used() = %d after at-threshold Allocate, want %d", m.Scratch().Used(), threshold)
	}

	aboveThreshold := f.Allocate(threshold+1, 8)
	if aboveThreshold == nil {
		t.Fatal("Allocate above threshold returned nil")
	}
	if got := m.Polynomial().Used(); got != threshold+1 {
		t.Errorf("polynomial Used() = %d after above-threshold Allocate, want %d", got, threshold+1)
	}
}

func TestFacadeZeroedAllocate(t *testing.T) {
	f := NewFacade(WithWitnessSize(4096), WithPolynomialSize(4096), WithScratchSize(4096))
	defer f.Close()

	buf := f.Allocate(64, 8)
	for i := range buf {
		buf[i] = 0xAB
	}
	f.Deallocate(buf)

	zeroed := f.ZeroedAllocate(64, 8)
	for i, b := range zeroed {
		if b != 0 {
			t.Fatalf("ZeroedAllocate byte %d = %#x, want 0", i, b)
		}
	}
}

func TestFacadeReallocateGrow(t *testing.T) {
	f := NewFacade(WithWitnessSize(4096), WithPolynomialSize(4096), WithScratchSize(4096))
	defer f.Close()

	buf := f.Allocate(16, 8)
	copy(buf, []byte("0123456789012345"))

	grown := f.Reallocate(buf, 32, 8)
	if len(grown) != 32 {
		t.Fatalf("Reallocate grew to len %d, want 32", len(grown))
	}
	if string(grown[:16]) != "0123456789012345" {
		t.Errorf("Reallocate did not preserve original contents: %q", grown[:16])
	}
}
