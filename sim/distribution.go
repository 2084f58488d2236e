// Stochastic samplers for the patient flow: exponential inter-arrival gaps,
// a categorical triage draw, and log-normal treatment durations.

package sim

import (
	"math"
	"math/rand"
	"sort"
)

// ExponentialSampler produces exponentially-distributed inter-arrival gaps
// for a Poisson arrival process.
type ExponentialSampler struct {
	mean float64 // mean gap in minutes
}

// NewExponentialSampler creates a sampler with the given hourly rate.
// The mean inter-arrival gap is 60/rate minutes.
func NewExponentialSampler(ratePerHour float64) *ExponentialSampler {
	return &ExponentialSampler{mean: 60 / ratePerHour}
}

// Sample returns the next inter-arrival gap in minutes. Always positive.
func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

// LogNormalSampler produces log-normally distributed service times:
// X = exp(mu + sigma*Z).
type LogNormalSampler struct {
	sigma float64
}

// treatmentSigma is the fixed scale parameter of the service time draw.
const treatmentSigma = 0.5

// NewLogNormalSampler creates a service time sampler with the fixed scale.
func NewLogNormalSampler() *LogNormalSampler {
	return &LogNormalSampler{sigma: treatmentSigma}
}

// Sample draws a treatment duration in minutes with the given mean service
// time as the location parameter (mu = ln(mean)).
func (s *LogNormalSampler) Sample(rng *rand.Rand, meanMinutes float64) float64 {
	z := rng.NormFloat64()
	val := math.Exp(math.Log(meanMinutes) + s.sigma*z)
	if math.IsInf(val, 0) || math.IsNaN(val) || val < 1 {
		return 1
	}
	return val
}

// PrioritySampler draws initial triage levels from a fixed categorical
// distribution using inverse CDF lookup.
type PrioritySampler struct {
	levels []Priority
	cdf    []float64
}

// triageDistribution is the arrival mix across triage levels.
var triageDistribution = map[Priority]float64{
	P1Resuscitation: 0.05,
	P2Emergent:      0.15,
	P3Urgent:        0.30,
	P4LessUrgent:    0.35,
	P5NonUrgent:     0.15,
}

// NewPrioritySampler builds the cumulative distribution over triage levels.
func NewPrioritySampler() *PrioritySampler {
	s := &PrioritySampler{
		levels: make([]Priority, 0, NumPriorities),
		cdf:    make([]float64, 0, NumPriorities),
	}
	cumulative := 0.0
	for _, level := range Priorities {
		cumulative += triageDistribution[level]
		s.levels = append(s.levels, level)
		s.cdf = append(s.cdf, cumulative)
	}
	// guard against float accumulation drift
	s.cdf[len(s.cdf)-1] = 1.0
	return s
}

// Sample draws one triage level.
func (s *PrioritySampler) Sample(rng *rand.Rand) Priority {
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.levels) {
		idx = len(s.levels) - 1
	}
	return s.levels[idx]
}
