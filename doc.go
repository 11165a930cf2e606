// Package nalloc implements a memory allocator tailored for zero-knowledge
// proof computations (zkSNARK/zkSTARK/Plonk/Groth16 provers).
//
// # Overview
//
// Proving workloads allocate in a bounded, phase-structured burst: witness
// vectors, polynomial coefficient buffers, scratch work, then free
// everything at once at the end of a proof and reset for the next one. A
// general-purpose allocator pays for capabilities this shape never uses
// (per-object free, fragmentation avoidance, thread-local freelists) while
// missing the two things the workload actually needs: predictable
// allocation latency and cryptographic-grade erasure of witness memory.
//
// nalloc reserves three fixed virtual-memory regions up front (witness,
// polynomial, and scratch) and serves every allocation by bumping a cursor
// within one of them. There is no per-allocation free, no coalescing, and
// no size classes; the whole arena resets (or, for witness memory, securely
// wipes) between proofs.
//
// # Basic usage
//
//	f := nalloc.NewFacade()
//	defer f.Close()
//
//	w := f.Witness()
//	secret := w.Alloc(32, 8) // always zero-initialized
//
//	p := f.Polynomial()
//	coeffs := p.AllocFFTFriendly(1 << 20) // 64-byte aligned
//
//	// ... run the proof ...
//
//	f.ResetAll() // secure-wipes witness, plain-resets polynomial & scratch
//
// # As the process allocator
//
// [Facade] also exposes the conventional allocate/deallocate/reallocate/
// zeroed-allocate surface a host runtime expects, routing by requested size:
//
//	addr := f.Allocate(size, align)
//	// size > LargeAllocThreshold  -> polynomial arena
//	// otherwise                   -> scratch arena
//
// Witness memory is never reachable through that ambient path; it is only
// obtained via the explicit [Facade.Witness] handle.
//
// # Thread safety
//
// Allocation is lock-free: the bump cursor advances via compare-and-swap,
// and any number of goroutines may allocate concurrently without blocking.
// Reset and secure wipe are not synchronized against concurrent allocation;
// callers must quiesce an arena before resetting it, matching the
// workload's natural phase boundaries between proofs.
//
// # Security
//
// Every byte returned by the witness arena reads as zero on first access,
// and [WitnessArena.SecureWipe] overwrites the entire backing region, not
// just the used prefix, using a write pattern the compiler cannot prove
// dead and therefore cannot elide.
package nalloc
