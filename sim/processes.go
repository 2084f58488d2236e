// The four recurring processes (arrival, deterioration, optimization,
// metrics) and the per-assignment treatment completion. Each recurring
// process is an action that performs its effect and re-enqueues its own next
// occurrence before returning.

package sim

import (
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/edsim/edsim/sim/policy"
)

// scheduleNextArrival draws the next exponential inter-arrival gap and
// schedules the arrival action.
func (s *Simulation) scheduleNextArrival() {
	gap := s.arrivalGap.Sample(s.RNG.ForSubsystem(SubsystemArrival))
	s.Clock.mustSchedule(gap, s.patientArrival)
}

// patientArrival admits one stochastic patient and reschedules itself.
func (s *Simulation) patientArrival() {
	priority := s.triage.Sample(s.RNG.ForSubsystem(SubsystemTriage))
	duration := s.service.Sample(s.RNG.ForSubsystem(SubsystemService), priority.MeanTreatmentTime())
	s.admit(priority, duration)
	s.scheduleNextArrival()
}

// deteriorationCheck walks the waiting queues of levels P2..P5 (P1 is already
// maximal) and escalates overdue patients with the configured per-check
// probability. Levels are visited most urgent first, so a patient escalated
// this check lands in an already-visited queue: at most one escalation per
// patient per check.
func (s *Simulation) deteriorationCheck() {
	now := s.Clock.Now()
	rng := s.RNG.ForSubsystem(SubsystemDeterioration)

	for _, level := range []Priority{P2Emergent, P3Urgent, P4LessUrgent, P5NonUrgent} {
		// The queue mutates on escalation; walk a copy.
		waiting := append([]*Patient(nil), s.Waiting.AtLevel(level)...)
		for _, p := range waiting {
			threshold := p.MaxWaitTime() * s.Config.DeteriorationWaitFactor
			if p.WaitTime(now) <= threshold {
				continue
			}
			if rng.Float64() >= s.Config.DeteriorationChance {
				continue
			}
			old := p.Priority
			if !p.Deteriorate() {
				continue
			}
			s.Waiting.Move(p, old, p.Priority)
			s.Metrics.TotalDeteriorations++
			logrus.Infof("[t=%07.1f] patient %d deteriorated %s -> %s", now, p.ID, old, p.Priority)
		}
	}

	s.Clock.mustSchedule(s.Config.DeteriorationInterval, s.deteriorationCheck)
}

// optimizationCycle snapshots the system, crosses the assignment-policy port,
// and applies the returned triples in order. The snapshot is logically
// instantaneous: the policy's wall-clock latency is recorded but never
// advances simulated time.
func (s *Simulation) optimizationCycle() {
	now := s.Clock.Now()
	s.Metrics.Solver.OptimizationCycles++

	snapshot := s.buildSnapshot(now)

	start := time.Now()
	assignments, err := s.Policy.Assign(snapshot)
	s.Metrics.Solver.PolicyWallTime += time.Since(start)

	if err != nil {
		// Recoverable: this cycle contributes zero assignments.
		s.Metrics.Solver.PolicyFailures++
		logrus.Warnf("[t=%07.1f] assignment policy failed: %v", now, err)
	} else {
		for _, a := range assignments {
			s.applyAssignment(a)
		}
	}

	s.Clock.mustSchedule(s.Config.OptimizationInterval, s.optimizationCycle)
}

// buildSnapshot flattens the waiting queues and free resources into the
// read-only record handed to the policy.
func (s *Simulation) buildSnapshot(now float64) policy.Snapshot {
	waiting := s.Waiting.All()
	snapshot := policy.Snapshot{
		WaitingPatients:  make([]policy.PatientInfo, 0, len(waiting)),
		AvailableDoctors: make([]int, 0, len(s.Pool.Doctors)),
		AvailableBeds:    make([]int, 0, len(s.Pool.Beds)),
		CurrentTime:      now,
	}
	for _, p := range waiting {
		snapshot.WaitingPatients = append(snapshot.WaitingPatients, policy.PatientInfo{
			ID:                p.ID,
			Priority:          int(p.Priority),
			WaitTime:          p.WaitTime(now),
			MaxWaitTime:       p.MaxWaitTime(),
			TreatmentDuration: p.TreatmentDuration,
		})
	}
	for _, d := range s.Pool.AvailableDoctors() {
		snapshot.AvailableDoctors = append(snapshot.AvailableDoctors, d.ID)
	}
	for _, b := range s.Pool.AvailableBeds() {
		snapshot.AvailableBeds = append(snapshot.AvailableBeds, b.ID)
	}
	return snapshot
}

// applyAssignment commits one policy triple, or skips it if the snapshot has
// gone stale since the policy saw it. Triples are applied left to right, so a
// conflicting policy output resolves first-triple-wins; that is a policy bug,
// not a simulation error, and must not crash the run.
func (s *Simulation) applyAssignment(a policy.Assignment) {
	now := s.Clock.Now()

	p := s.Waiting.FindByID(a.PatientID)
	if p == nil {
		// Already assigned or discharged since the snapshot was taken.
		s.Metrics.Solver.SkippedAssignments++
		logrus.Debugf("[t=%07.1f] skipping stale assignment for patient %d", now, a.PatientID)
		return
	}
	doctor := s.Pool.DoctorByID(a.DoctorID)
	bed := s.Pool.BedByID(a.BedID)
	if doctor == nil || bed == nil || !doctor.IsAvailable || !bed.IsAvailable {
		s.Metrics.Solver.SkippedAssignments++
		logrus.Debugf("[t=%07.1f] skipping assignment for patient %d: resources unavailable", now, a.PatientID)
		return
	}

	if !s.Waiting.Remove(p, p.Priority) {
		panic("waiting patient not found in its own priority queue")
	}
	p.StartTreatment(now, doctor.ID, bed.ID)
	doctor.Assign(p.ID)
	bed.Assign(p.ID)
	s.Treating = append(s.Treating, p)
	s.Metrics.Solver.CommittedAssignments++

	treated := p
	s.Clock.mustSchedule(p.TreatmentDuration, func() {
		s.completeTreatment(treated)
	})

	logrus.Infof("[t=%07.1f] patient %d assigned to %s and bed %d", now, p.ID, doctor.Name, bed.ID)
}

// completeTreatment is the one-shot action scheduled at assignment time, due
// at start + treatment duration. Treatments, once started, always complete.
func (s *Simulation) completeTreatment(p *Patient) {
	now := s.Clock.Now()

	if doctor := s.Pool.DoctorByID(p.AssignedDoctor); doctor != nil {
		doctor.Release(p.TreatmentDuration)
	}
	if bed := s.Pool.BedByID(p.AssignedBed); bed != nil {
		bed.Release(p.TreatmentDuration)
	}

	p.EndTreatment(now)
	s.removeTreating(p)
	s.Discharged = append(s.Discharged, p)
	s.Metrics.TotalTreated++

	logrus.Infof("[t=%07.1f] patient %d discharged", now, p.ID)
}

// collectMetrics samples the system state and reschedules itself.
func (s *Simulation) collectMetrics() {
	now := s.Clock.Now()

	waiting := s.Waiting.All()
	avgWait := 0.0
	if len(waiting) > 0 {
		waits := make([]float64, len(waiting))
		for i, p := range waiting {
			waits[i] = p.WaitTime(now)
		}
		avgWait = stat.Mean(waits, nil)
	}

	stats := s.Pool.Statistics(now)
	s.Metrics.Sample(MetricPoint{
		Time:               now,
		TotalArrivals:      s.Metrics.TotalArrivals,
		WaitingPatients:    len(waiting),
		AvgWaitTime:        avgWait,
		TreatingPatients:   len(s.Treating),
		DischargedPatients: len(s.Discharged),
		DoctorUtilization:  stats.MeanDoctorUtilization,
		BedOccupancy:       stats.MeanBedOccupancy,
	})

	s.Clock.mustSchedule(s.Config.MetricsInterval, s.collectMetrics)
}
