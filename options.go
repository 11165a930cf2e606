package nalloc

// Default arena sizes, chosen for a typical halo2-style proving session:
// witness values are small but numerous, polynomials dominate memory, and
// scratch covers everything else a prover touches in passing.
const (
	WitnessArenaSize = 128 << 20 // 128MiB
	PolyArenaSize    = 1 << 30   // 1GiB
	ScratchArenaSize = 256 << 20 // 256MiB
)

// LargeAllocThreshold is the default size above which Facade.Allocate routes
// a request to the polynomial arena instead of scratch. Override per-manager
// with WithLargeAllocThreshold.
const LargeAllocThreshold = 1 << 20 // 1MiB

// managerConfig collects the sizes an ArenaManager is built with. Unexported:
// callers configure it only through ArenaManagerOption.
type managerConfig struct {
	witnessSize         int
	polynomialSize      int
	scratchSize         int
	largeAllocThreshold int
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		witnessSize:         WitnessArenaSize,
		polynomialSize:      PolyArenaSize,
		scratchSize:         ScratchArenaSize,
		largeAllocThreshold: LargeAllocThreshold,
	}
}

// ArenaManagerOption customizes NewArenaManager's arena sizes.
type ArenaManagerOption func(*managerConfig)

// WithWitnessSize overrides the witness arena's capacity in bytes.
func WithWitnessSize(size int) ArenaManagerOption {
	return func(c *managerConfig) { c.witnessSize = size }
}

// WithPolynomialSize overrides the polynomial arena's capacity in bytes.
func WithPolynomialSize(size int) ArenaManagerOption {
	return func(c *managerConfig) { c.polynomialSize = size }
}

// WithScratchSize overrides the scratch arena's capacity in bytes.
func WithScratchSize(size int) ArenaManagerOption {
	return func(c *managerConfig) { c.scratchSize = size }
}

// WithLargeAllocThreshold overrides the size above which Facade.Allocate
// routes a request to the polynomial arena instead of scratch.
func WithLargeAllocThreshold(size int) ArenaManagerOption {
	return func(c *managerConfig) { c.largeAllocThreshold = size }
}
