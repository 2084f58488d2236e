// Defines the Patient struct that models an individual patient in the
// simulation. Tracks arrival time, triage priority, the pre-drawn treatment
// duration, and lifecycle timestamps.

package sim

import "fmt"

// PatientState represents the lifecycle state of a patient. It is derived
// from the treatment timestamps, never stored separately.
type PatientState string

const (
	StateWaiting     PatientState = "waiting"
	StateInTreatment PatientState = "in-treatment"
	StateDischarged  PatientState = "discharged"
)

// unset marks an optional timestamp or resource id that has not been
// assigned yet. All simulated times are non-negative, so -1 is unambiguous.
const unset = -1

// Patient models a single patient's lifecycle in the simulation.
// A patient is in exactly one of waiting, in-treatment or discharged at any
// simulated instant; arrival ≤ start ≤ end holds whenever the timestamps
// are set.
type Patient struct {
	ID int `json:"id"` // Unique, monotonically assigned by the simulation

	ArrivalTime     float64  `json:"arrival_time"`
	Priority        Priority `json:"priority"`         // current level; escalation only
	InitialPriority Priority `json:"initial_priority"` // level assigned at triage

	// TreatmentDuration is drawn once at creation from a log-normal
	// distribution parameterized by the initial priority's mean service time.
	TreatmentDuration float64 `json:"treatment_duration"`

	AssignedDoctor int `json:"assigned_doctor"` // -1 until assigned
	AssignedBed    int `json:"assigned_bed"`    // -1 until assigned

	StartTreatmentTime float64 `json:"start_treatment_time"` // -1 until treatment starts
	EndTreatmentTime   float64 `json:"end_treatment_time"`   // -1 until discharged
}

// NewPatient creates a waiting patient arriving at arrivalTime with the given
// triage level and pre-drawn treatment duration.
func NewPatient(id int, arrivalTime float64, priority Priority, treatmentDuration float64) *Patient {
	return &Patient{
		ID:                 id,
		ArrivalTime:        arrivalTime,
		Priority:           priority,
		InitialPriority:    priority,
		TreatmentDuration:  treatmentDuration,
		AssignedDoctor:     unset,
		AssignedBed:        unset,
		StartTreatmentTime: unset,
		EndTreatmentTime:   unset,
	}
}

// State derives the lifecycle state from the treatment timestamps.
func (p *Patient) State() PatientState {
	switch {
	case p.EndTreatmentTime != unset:
		return StateDischarged
	case p.StartTreatmentTime != unset:
		return StateInTreatment
	default:
		return StateWaiting
	}
}

// WaitTime returns how long the patient has waited for treatment. Once
// treatment has started the wait is frozen at start − arrival.
func (p *Patient) WaitTime(now float64) float64 {
	if p.StartTreatmentTime != unset {
		return p.StartTreatmentTime - p.ArrivalTime
	}
	return now - p.ArrivalTime
}

// MaxWaitTime returns the maximum recommended wait for the patient's
// current triage level.
func (p *Patient) MaxWaitTime() float64 {
	return p.Priority.MaxWaitTime()
}

// Deteriorate escalates the patient one triage level toward P1 and reports
// whether the level changed. Priority is immutable once treatment starts.
func (p *Patient) Deteriorate() bool {
	if p.State() != StateWaiting {
		return false
	}
	next := p.Priority.Escalate()
	if next == p.Priority {
		return false
	}
	p.Priority = next
	return true
}

// StartTreatment records the treatment start and the assigned resources.
// Each of these fields is set exactly once.
func (p *Patient) StartTreatment(now float64, doctorID, bedID int) {
	if p.StartTreatmentTime != unset {
		panic(fmt.Sprintf("patient %d: treatment started twice", p.ID))
	}
	if now < p.ArrivalTime {
		panic(fmt.Sprintf("patient %d: treatment starts before arrival", p.ID))
	}
	p.StartTreatmentTime = now
	p.AssignedDoctor = doctorID
	p.AssignedBed = bedID
}

// EndTreatment records the discharge time. Set exactly once, after start.
func (p *Patient) EndTreatment(now float64) {
	if p.StartTreatmentTime == unset {
		panic(fmt.Sprintf("patient %d: treatment ended before it started", p.ID))
	}
	if p.EndTreatmentTime != unset {
		panic(fmt.Sprintf("patient %d: treatment ended twice", p.ID))
	}
	if now < p.StartTreatmentTime {
		panic(fmt.Sprintf("patient %d: treatment ends before it started", p.ID))
	}
	p.EndTreatmentTime = now
}

// String returns a human-readable representation of a Patient.
func (p *Patient) String() string {
	return fmt.Sprintf("Patient(%d, %s, state=%s)", p.ID, p.Priority, p.State())
}
