package engine

import "sync/atomic"

// Stats tracks execution counters for tuning and tests.
//
// Counters accumulate across every Count on the engine and are updated
// atomically, so snapshots are safe during concurrent counts.
type Stats struct {
	// ShortScans is the number of reference-side seeding passes (one per
	// Count call).
	ShortScans uint64

	// KernelLaunches is the number of per-depth kernel dispatches.
	KernelLaunches uint64

	// Candidates is the number of positions the kernel flagged for
	// verification.
	Candidates uint64

	// VerifiedMatches is the number of candidates confirmed against the
	// full pattern.
	VerifiedMatches uint64

	// FalsePositives is the number of candidates rejected by verification
	// (signature collisions whose pattern tail did not match).
	FalsePositives uint64
}

func (s *Stats) addShortScans(n uint64)     { atomic.AddUint64(&s.ShortScans, n) }
func (s *Stats) addKernelLaunches(n uint64) { atomic.AddUint64(&s.KernelLaunches, n) }

func (s *Stats) addVerification(candidates, verified, falsePositives uint64) {
	atomic.AddUint64(&s.Candidates, candidates)
	atomic.AddUint64(&s.VerifiedMatches, verified)
	atomic.AddUint64(&s.FalsePositives, falsePositives)
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		ShortScans:      atomic.LoadUint64(&e.stats.ShortScans),
		KernelLaunches:  atomic.LoadUint64(&e.stats.KernelLaunches),
		Candidates:      atomic.LoadUint64(&e.stats.Candidates),
		VerifiedMatches: atomic.LoadUint64(&e.stats.VerifiedMatches),
		FalsePositives:  atomic.LoadUint64(&e.stats.FalsePositives),
	}
}
