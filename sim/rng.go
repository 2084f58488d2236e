package sim

import (
	"hash/fnv"
	"math/rand"
)

// === Subsystem Constants ===

const (
	// SubsystemArrival draws exponential inter-arrival gaps.
	SubsystemArrival = "arrival"

	// SubsystemTriage draws the initial priority of each arriving patient.
	SubsystemTriage = "triage"

	// SubsystemService draws log-normal treatment durations.
	SubsystemService = "service"

	// SubsystemDeterioration draws per-check escalation coin flips.
	SubsystemDeterioration = "deterioration"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem so that, for example, extra deterioration checks never perturb
// the arrival stream. Two simulations with the same seed and identical
// configuration MUST produce bit-for-bit identical results.
//
// Derivation: seed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine,
// which the cooperative event loop guarantees.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
