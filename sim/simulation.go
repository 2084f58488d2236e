// sim/simulation.go
package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/sim/policy"
)

// Simulation is the core object that owns simulated time, the entity model,
// and the recurring processes. Scheduling is single-threaded cooperative:
// exactly one event action executes at a time, so the entity model needs no
// locking. Every run with the same seed, configuration and policy behavior
// is reproducible.
type Simulation struct {
	Config Config
	Clock  *Clock
	RNG    *PartitionedRNG

	Pool    *ResourcePool
	Waiting *WaitingQueues
	// Treating holds patients between assignment and discharge, in
	// assignment order.
	Treating   []*Patient
	Discharged []*Patient

	Metrics *Metrics
	Policy  policy.AssignmentPolicy

	nextPatientID int

	arrivalGap *ExponentialSampler
	triage     *PrioritySampler
	service    *LogNormalSampler

	// arrivalsDisabled suppresses the stochastic arrival process so a caller
	// can drive the run purely through InjectArrival.
	arrivalsDisabled bool
}

// NewSimulation validates the configuration and initializes the entity model.
// No event is scheduled until Run.
func NewSimulation(cfg Config, pol policy.AssignmentPolicy) (*Simulation, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		Config:     cfg,
		Clock:      NewClock(),
		RNG:        NewPartitionedRNG(cfg.Seed),
		Pool:       NewResourcePool(cfg.NumDoctors, cfg.NumBeds),
		Waiting:    NewWaitingQueues(),
		Treating:   make([]*Patient, 0),
		Discharged: make([]*Patient, 0),
		Metrics:    NewMetrics(),
		Policy:     pol,
		arrivalGap: NewExponentialSampler(cfg.ArrivalRate),
		triage:     NewPrioritySampler(),
		service:    NewLogNormalSampler(),
	}, nil
}

// InjectArrival schedules one deterministic patient arrival delay minutes
// from the current simulated time, bypassing the stochastic draws. Meant for
// trace replay and deterministic scenarios.
func (s *Simulation) InjectArrival(delay float64, priority Priority, treatmentDuration float64) error {
	return s.Clock.Schedule(delay, func() {
		s.admit(priority, treatmentDuration)
	})
}

// Run schedules the first occurrence of each recurring process, drives the
// event loop to the horizon, and assembles the result record.
func (s *Simulation) Run() *SimulationResult {
	if !s.arrivalsDisabled {
		s.scheduleNextArrival()
	}
	s.Clock.mustSchedule(s.Config.DeteriorationInterval, s.deteriorationCheck)
	s.Clock.mustSchedule(s.Config.OptimizationInterval, s.optimizationCycle)
	s.Clock.mustSchedule(s.Config.MetricsInterval, s.collectMetrics)

	s.Clock.RunUntil(s.Config.Horizon)

	logrus.Infof("[t=%07.1f] simulation ended: %d arrivals, %d treated, %d still waiting",
		s.Clock.Now(), s.Metrics.TotalArrivals, s.Metrics.TotalTreated, s.Waiting.Len())

	return s.buildResult()
}

// admit creates a patient at the current time and appends it to the matching
// waiting queue.
func (s *Simulation) admit(priority Priority, treatmentDuration float64) *Patient {
	s.nextPatientID++
	p := NewPatient(s.nextPatientID, s.Clock.Now(), priority, treatmentDuration)
	s.Waiting.Enqueue(p)
	s.Metrics.TotalArrivals++
	logrus.Infof("[t=%07.1f] patient %d arrived (%s)", s.Clock.Now(), p.ID, p.Priority)
	return p
}

// removeTreating takes a patient out of the active-treatment set.
func (s *Simulation) removeTreating(p *Patient) {
	for i, cand := range s.Treating {
		if cand == p {
			s.Treating = append(s.Treating[:i], s.Treating[i+1:]...)
			return
		}
	}
	panic("patient completed treatment without being in the treating set")
}

// buildResult assembles the immutable run record.
func (s *Simulation) buildResult() *SimulationResult {
	return &SimulationResult{
		RunID:               uuid.NewString(),
		Seed:                s.Config.Seed,
		TotalArrivals:       s.Metrics.TotalArrivals,
		TotalTreated:        s.Metrics.TotalTreated,
		TotalDeteriorations: s.Metrics.TotalDeteriorations,
		StillWaiting:        s.Waiting.Len(),
		InTreatment:         len(s.Treating),
		DischargedPatients:  s.Discharged,
		ResourceStats:       s.Pool.Statistics(s.Clock.Now()),
		Series:              s.Metrics.Series,
		Solver:              s.Metrics.Solver,
		SimEndTime:          s.Clock.Now(),
	}
}
