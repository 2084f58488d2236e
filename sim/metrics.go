// Tracks sampled time-series metrics and run-level counters for final
// reporting.

package sim

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// MetricPoint is one sample of the system state, taken by the metrics
// process on its fixed interval.
type MetricPoint struct {
	Time               float64 `json:"time"`
	TotalArrivals      int     `json:"total_arrivals"` // arrivals so far
	WaitingPatients    int     `json:"waiting_patients"`
	AvgWaitTime        float64 `json:"avg_wait_time"` // over currently-waiting patients, 0 if none
	TreatingPatients   int     `json:"treating_patients"`
	DischargedPatients int     `json:"discharged_patients"`
	DoctorUtilization  float64 `json:"doctor_utilization"` // mean %, cumulative busy over elapsed
	BedOccupancy       float64 `json:"bed_occupancy"`      // mean %, cumulative busy over elapsed
}

// SolverStats records observability counters for the assignment-policy port.
// PolicyWallTime is real solver latency; it is reported but takes no part in
// simulated time or in the determinism contract.
type SolverStats struct {
	OptimizationCycles   int           `json:"optimization_cycles"`
	PolicyFailures       int           `json:"policy_failures"`
	SkippedAssignments   int           `json:"skipped_assignments"` // stale or conflicting triples
	CommittedAssignments int           `json:"committed_assignments"`
	PolicyWallTime       time.Duration `json:"policy_wall_time_ns"`
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	TotalArrivals       int `json:"total_arrivals"`
	TotalTreated        int `json:"total_treated"`
	TotalDeteriorations int `json:"total_deteriorations"`

	Series []MetricPoint `json:"series"`
	Solver SolverStats   `json:"solver"`
}

// NewMetrics creates an empty metrics record.
func NewMetrics() *Metrics {
	return &Metrics{Series: make([]MetricPoint, 0)}
}

// Sample appends one time-series point.
func (m *Metrics) Sample(pt MetricPoint) {
	m.Series = append(m.Series, pt)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(endTime float64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Simulated time       : %.1f min\n", endTime)
	fmt.Printf("Total arrivals       : %d\n", m.TotalArrivals)
	fmt.Printf("Total treated        : %d\n", m.TotalTreated)
	fmt.Printf("Total deteriorations : %d\n", m.TotalDeteriorations)
	fmt.Printf("Optimization cycles  : %d (failures: %d, skipped triples: %d)\n",
		m.Solver.OptimizationCycles, m.Solver.PolicyFailures, m.Solver.SkippedAssignments)
	fmt.Printf("Policy wall time     : %v\n", m.Solver.PolicyWallTime)
	if len(m.Series) > 0 {
		waiting := make([]float64, len(m.Series))
		for i, pt := range m.Series {
			waiting[i] = float64(pt.WaitingPatients)
		}
		last := m.Series[len(m.Series)-1]
		fmt.Printf("Mean queue length    : %.2f\n", stat.Mean(waiting, nil))
		fmt.Printf("Doctor utilization   : %.1f%%\n", last.DoctorUtilization)
		fmt.Printf("Bed occupancy        : %.1f%%\n", last.BedOccupancy)
	}
}
