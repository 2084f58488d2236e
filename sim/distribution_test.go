package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentialSampler_PositiveGaps_WithConfiguredMean(t *testing.T) {
	// GIVEN 6 arrivals per hour, the mean gap is 10 minutes
	s := NewExponentialSampler(6)
	rng := rand.New(rand.NewSource(1))

	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		gap := s.Sample(rng)
		assert.Greater(t, gap, 0.0)
		sum += gap
	}

	assert.InDelta(t, 10.0, sum/n, 0.5, "empirical mean gap")
}

func TestLogNormalSampler_PositiveDurations_ScaledByMean(t *testing.T) {
	s := NewLogNormalSampler()
	rng := rand.New(rand.NewSource(1))

	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		d := s.Sample(rng, 60)
		assert.GreaterOrEqual(t, d, 1.0)
		sum += d
	}

	// exp(ln(60) + 0.5 Z) has mean 60 * exp(0.125) ≈ 68
	assert.InDelta(t, 68.0, sum/n, 3.0)
}

func TestPrioritySampler_RespectsCategoricalDistribution(t *testing.T) {
	s := NewPrioritySampler()
	rng := rand.New(rand.NewSource(1))

	counts := make(map[Priority]int)
	const n = 50000
	for i := 0; i < n; i++ {
		level := s.Sample(rng)
		assert.True(t, level.Valid())
		counts[level]++
	}

	expected := map[Priority]float64{
		P1Resuscitation: 0.05,
		P2Emergent:      0.15,
		P3Urgent:        0.30,
		P4LessUrgent:    0.35,
		P5NonUrgent:     0.15,
	}
	for level, share := range expected {
		assert.InDelta(t, share, float64(counts[level])/n, 0.01, "share of %s", level)
	}
}

func TestPrioritySampler_ExtremeDraws_StayInRange(t *testing.T) {
	s := NewPrioritySampler()

	// u close to 1.0 must still map to the last level, not out of range
	assert.Equal(t, P5NonUrgent, s.levels[len(s.levels)-1])
	assert.Equal(t, 1.0, s.cdf[len(s.cdf)-1])
}
