package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitingQueues_Enqueue_PreservesFIFOWithinLevel(t *testing.T) {
	wq := NewWaitingQueues()
	first := NewPatient(1, 0, P3Urgent, 60)
	second := NewPatient(2, 5, P3Urgent, 60)
	wq.Enqueue(first)
	wq.Enqueue(second)

	got := wq.AtLevel(P3Urgent)

	require.Len(t, got, 2)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
}

func TestWaitingQueues_All_FlattensMostUrgentFirst(t *testing.T) {
	wq := NewWaitingQueues()
	low := NewPatient(1, 0, P5NonUrgent, 30)
	high := NewPatient(2, 1, P1Resuscitation, 120)
	mid := NewPatient(3, 2, P3Urgent, 60)
	wq.Enqueue(low)
	wq.Enqueue(high)
	wq.Enqueue(mid)

	got := wq.All()

	require.Len(t, got, 3)
	assert.Same(t, high, got[0])
	assert.Same(t, mid, got[1])
	assert.Same(t, low, got[2])
}

func TestWaitingQueues_Move_TransfersBetweenLevels(t *testing.T) {
	// GIVEN a P4 patient and an earlier P3 patient
	wq := NewWaitingQueues()
	older := NewPatient(1, 0, P3Urgent, 60)
	escalating := NewPatient(2, 0, P4LessUrgent, 45)
	wq.Enqueue(older)
	wq.Enqueue(escalating)

	// WHEN the P4 patient escalates to P3
	escalating.Priority = P3Urgent
	wq.Move(escalating, P4LessUrgent, P3Urgent)

	// THEN it joins the back of the P3 queue and leaves P4
	assert.Empty(t, wq.AtLevel(P4LessUrgent))
	p3 := wq.AtLevel(P3Urgent)
	require.Len(t, p3, 2)
	assert.Same(t, older, p3[0])
	assert.Same(t, escalating, p3[1])
}

func TestWaitingQueues_FindByID(t *testing.T) {
	wq := NewWaitingQueues()
	p := NewPatient(42, 0, P2Emergent, 90)
	wq.Enqueue(p)

	assert.Same(t, p, wq.FindByID(42))
	assert.Nil(t, wq.FindByID(99), "unknown id returns nil")
}

func TestWaitingQueues_Remove(t *testing.T) {
	wq := NewWaitingQueues()
	p := NewPatient(1, 0, P2Emergent, 90)
	wq.Enqueue(p)

	assert.True(t, wq.Remove(p, P2Emergent))
	assert.Equal(t, 0, wq.Len())
	assert.False(t, wq.Remove(p, P2Emergent), "second removal finds nothing")
}
