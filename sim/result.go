package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimulationResult is the immutable record assembled at run end. One result
// is produced per replication; aggregation across replications happens
// externally.
type SimulationResult struct {
	RunID string `json:"run_id"`
	Seed  int64  `json:"seed"`

	TotalArrivals       int `json:"total_arrivals"`
	TotalTreated        int `json:"total_treated"`
	TotalDeteriorations int `json:"total_deteriorations"`
	StillWaiting        int `json:"still_waiting"`
	InTreatment         int `json:"in_treatment"`

	DischargedPatients []*Patient    `json:"discharged_patients"`
	ResourceStats      ResourceStats `json:"resource_stats"`
	Series             []MetricPoint `json:"metrics"`
	Solver             SolverStats   `json:"solver"`

	SimEndTime float64 `json:"sim_end_time"`
}

// WriteJSON serializes the result to path as indented JSON.
func (r *SimulationResult) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
