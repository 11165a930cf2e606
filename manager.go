package nalloc

import (
	"go.uber.org/zap"
)

// ArenaManager owns the three specialized arenas a proving session uses
// and the raw VM reservations backing them. Callers that want typed
// arena access without going through the process-wide Facade construct
// one directly with NewArenaManager.
type ArenaManager struct {
	witness    *WitnessArena
	polynomial *PolynomialArena
	scratch    *BumpEngine

	witnessBase    uintptr
	polynomialBase uintptr
	scratchBase    uintptr
	witnessCap     int
	polynomialCap  int
	scratchCap     int

	largeAllocThreshold int
}

// NewArenaManager reserves virtual memory for the witness, polynomial, and
// scratch arenas and returns a manager over them. Reservation failure on
// any of the three releases whatever was already reserved and returns the
// *AllocFailed for the arena that failed.
func NewArenaManager(opts ...ArenaManagerOption) (*ArenaManager, error) {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	witnessBase, err := reserve(cfg.witnessSize)
	if err != nil {
		return nil, err
	}
	polynomialBase, err := reserve(cfg.polynomialSize)
	if err != nil {
		_ = release(witnessBase, cfg.witnessSize)
		return nil, err
	}
	scratchBase, err := reserve(cfg.scratchSize)
	if err != nil {
		_ = release(witnessBase, cfg.witnessSize)
		_ = release(polynomialBase, cfg.polynomialSize)
		return nil, err
	}

	logger.Debug("nalloc: reserved arenas",
		zap.Int("witness_size", cfg.witnessSize),
		zap.Int("polynomial_size", cfg.polynomialSize),
		zap.Int("scratch_size", cfg.scratchSize),
	)

	return &ArenaManager{
		witness:             newWitnessArena(witnessBase, cfg.witnessSize),
		polynomial:          newPolynomialArena(polynomialBase, cfg.polynomialSize),
		scratch:             newBumpEngine(scratchBase, cfg.scratchSize),
		witnessBase:         witnessBase,
		polynomialBase:      polynomialBase,
		scratchBase:         scratchBase,
		witnessCap:          cfg.witnessSize,
		polynomialCap:       cfg.polynomialSize,
		scratchCap:          cfg.scratchSize,
		largeAllocThreshold: cfg.largeAllocThreshold,
	}, nil
}

// LargeAllocThreshold returns the size above which this manager's Facade
// routes an allocation to the polynomial arena instead of scratch.
func (m *ArenaManager) LargeAllocThreshold() int { return m.largeAllocThreshold }

// Witness returns the manager's witness arena.
func (m *ArenaManager) Witness() *WitnessArena { return m.witness }

// Polynomial returns the manager's polynomial arena.
func (m *ArenaManager) Polynomial() *PolynomialArena { return m.polynomial }

// Scratch returns the manager's scratch bump engine.
func (m *ArenaManager) Scratch() *BumpEngine { return m.scratch }

// ResetAll wipes the witness arena securely and resets the polynomial and
// scratch arenas with a plain (non-secure) reset. Call this between
// proving sessions; it is not safe to call while any arena is in use.
func (m *ArenaManager) ResetAll() {
	m.witness.SecureWipe()
	m.polynomial.Reset()
	m.scratch.Reset()
	logger.Debug("nalloc: reset all arenas")
}

// Release returns all three arenas' virtual memory to the OS. The manager
// must not be used afterward. Release failures are logged rather than
// returned, since the process is tearing this manager down regardless.
func (m *ArenaManager) Release() {
	if err := release(m.witnessBase, m.witnessCap); err != nil {
		logger.Warn("nalloc: releasing witness arena failed", zap.Error(err))
	}
	if err := release(m.polynomialBase, m.polynomialCap); err != nil {
		logger.Warn("nalloc: releasing polynomial arena failed", zap.Error(err))
	}
	if err := release(m.scratchBase, m.scratchCap); err != nil {
		logger.Warn("nalloc: releasing scratch arena failed", zap.Error(err))
	}
}

// Stats returns a point-in-time snapshot of all three arenas.
func (m *ArenaManager) Stats() Stats {
	return Stats{
		Witness:    arenaStats(m.witnessCap, m.witness.Used()),
		Polynomial: arenaStats(m.polynomialCap, m.polynomial.Used()),
		Scratch:    arenaStats(m.scratchCap, m.scratch.Used()),
	}
}
