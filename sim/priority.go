package sim

import "fmt"

// Priority is a triage urgency level. Lower values are more urgent:
// P1 is resuscitation, P5 is non-urgent.
type Priority int

const (
	P1Resuscitation Priority = iota + 1
	P2Emergent
	P3Urgent
	P4LessUrgent
	P5NonUrgent
)

// NumPriorities is the number of triage levels.
const NumPriorities = 5

// Priorities lists all levels in urgency order, most urgent first.
var Priorities = [NumPriorities]Priority{
	P1Resuscitation, P2Emergent, P3Urgent, P4LessUrgent, P5NonUrgent,
}

func (p Priority) String() string {
	switch p {
	case P1Resuscitation:
		return "P1_RESUSCITATION"
	case P2Emergent:
		return "P2_EMERGENT"
	case P3Urgent:
		return "P3_URGENT"
	case P4LessUrgent:
		return "P4_LESS_URGENT"
	case P5NonUrgent:
		return "P5_NON_URGENT"
	default:
		return fmt.Sprintf("P?(%d)", int(p))
	}
}

// Valid reports whether p is one of the five triage levels.
func (p Priority) Valid() bool {
	return p >= P1Resuscitation && p <= P5NonUrgent
}

// MeanTreatmentTime returns the mean treatment duration in minutes for a
// patient triaged at this level. Used as the location parameter of the
// log-normal service time draw.
func (p Priority) MeanTreatmentTime() float64 {
	switch p {
	case P1Resuscitation:
		return 120
	case P2Emergent:
		return 90
	case P3Urgent:
		return 60
	case P4LessUrgent:
		return 45
	default:
		return 30
	}
}

// MaxWaitTime returns the maximum recommended wait in minutes before
// treatment should begin for this level.
func (p Priority) MaxWaitTime() float64 {
	switch p {
	case P1Resuscitation:
		return 0
	case P2Emergent:
		return 15
	case P3Urgent:
		return 30
	case P4LessUrgent:
		return 60
	default:
		return 120
	}
}

// Escalate returns the next more-urgent level. P1 is the floor: escalating
// P1 returns P1.
func (p Priority) Escalate() Priority {
	if p <= P1Resuscitation {
		return P1Resuscitation
	}
	return p - 1
}
