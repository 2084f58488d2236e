// Package policy defines the assignment-policy boundary of the simulation.
// The simulation hands a read-only snapshot of waiting patients and free
// resources across this boundary and receives proposed assignments back.
// Concrete combinatorial solvers live behind this interface; the package
// itself stores pure data types plus a baseline greedy implementation.
package policy

// PatientInfo describes one waiting patient as seen by a policy.
type PatientInfo struct {
	ID                int     `json:"id"`
	Priority          int     `json:"priority"` // 1 = most urgent .. 5 = least urgent
	WaitTime          float64 `json:"wait_time"`
	MaxWaitTime       float64 `json:"max_wait_time"`
	TreatmentDuration float64 `json:"treatment_duration"`
}

// Snapshot is a read-only, time-stamped copy of the system state passed to a
// policy. It is logically instantaneous at the optimization tick: the policy's
// own wall-clock latency never advances simulated time.
type Snapshot struct {
	WaitingPatients  []PatientInfo `json:"waiting_patients"`
	AvailableDoctors []int         `json:"available_doctors"`
	AvailableBeds    []int         `json:"available_beds"`
	CurrentTime      float64       `json:"current_time"`
}

// Assignment proposes committing one patient to one doctor and one bed.
type Assignment struct {
	PatientID int `json:"patient_id"`
	DoctorID  int `json:"doctor_id"`
	BedID     int `json:"bed_id"`
}

// AssignmentPolicy selects which waiting patients receive which resources.
// It may return an empty slice (no assignments this cycle). A non-nil error
// is recoverable: the simulation treats the cycle as yielding zero
// assignments. Implementations MUST NOT retain the snapshot's slices.
type AssignmentPolicy interface {
	Assign(snapshot Snapshot) ([]Assignment, error)
}

// AssignmentPolicyFunc adapts a plain function to the AssignmentPolicy
// interface.
type AssignmentPolicyFunc func(snapshot Snapshot) ([]Assignment, error)

// Assign calls f.
func (f AssignmentPolicyFunc) Assign(snapshot Snapshot) ([]Assignment, error) {
	return f(snapshot)
}
