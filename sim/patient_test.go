package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatient_Creation_StartsWaiting(t *testing.T) {
	p := NewPatient(1, 0, P3Urgent, 60)

	assert.Equal(t, StateWaiting, p.State())
	assert.Equal(t, P3Urgent, p.Priority)
	assert.Equal(t, P3Urgent, p.InitialPriority)
	assert.Equal(t, 60.0, p.TreatmentDuration)
	assert.Equal(t, unset, p.AssignedDoctor)
	assert.Equal(t, unset, p.AssignedBed)
}

func TestPatient_WaitTime_FrozenOnceTreatmentStarts(t *testing.T) {
	// GIVEN a patient arriving at t=10
	p := NewPatient(1, 10, P3Urgent, 60)

	// WHEN still waiting at t=40
	assert.Equal(t, 30.0, p.WaitTime(40))

	// WHEN treatment starts at t=40
	p.StartTreatment(40, 1, 1)

	// THEN the wait stays at start - arrival regardless of current time
	assert.Equal(t, 30.0, p.WaitTime(50))
	assert.Equal(t, 30.0, p.WaitTime(500))
}

func TestPatient_Lifecycle_StateTransitions(t *testing.T) {
	p := NewPatient(7, 5, P2Emergent, 90)
	require.Equal(t, StateWaiting, p.State())

	p.StartTreatment(30, 0, 2)
	assert.Equal(t, StateInTreatment, p.State())
	assert.Equal(t, 0, p.AssignedDoctor)
	assert.Equal(t, 2, p.AssignedBed)

	p.EndTreatment(120)
	assert.Equal(t, StateDischarged, p.State())
	assert.LessOrEqual(t, p.ArrivalTime, p.StartTreatmentTime)
	assert.LessOrEqual(t, p.StartTreatmentTime, p.EndTreatmentTime)
}

func TestPatient_Deteriorate_EscalatesWhileWaiting(t *testing.T) {
	p := NewPatient(1, 0, P5NonUrgent, 30)

	changed := p.Deteriorate()

	assert.True(t, changed)
	assert.Equal(t, P4LessUrgent, p.Priority)
	assert.Equal(t, P5NonUrgent, p.InitialPriority, "initial priority is immutable")
}

func TestPatient_Deteriorate_P1IsFloor(t *testing.T) {
	p := NewPatient(1, 0, P1Resuscitation, 120)

	assert.False(t, p.Deteriorate())
	assert.Equal(t, P1Resuscitation, p.Priority)
}

func TestPatient_Deteriorate_FrozenOnceInTreatment(t *testing.T) {
	p := NewPatient(1, 0, P4LessUrgent, 45)
	p.StartTreatment(10, 0, 0)

	assert.False(t, p.Deteriorate())
	assert.Equal(t, P4LessUrgent, p.Priority)
}

func TestPatient_StartTreatment_Twice_Panics(t *testing.T) {
	p := NewPatient(1, 0, P3Urgent, 60)
	p.StartTreatment(10, 0, 0)

	assert.Panics(t, func() { p.StartTreatment(20, 1, 1) })
}

func TestPatient_EndTreatment_BeforeStart_Panics(t *testing.T) {
	p := NewPatient(1, 0, P3Urgent, 60)

	assert.Panics(t, func() { p.EndTreatment(20) })
}
