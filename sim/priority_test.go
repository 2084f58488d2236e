package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_MaxWaitTime_PerLevel(t *testing.T) {
	cases := []struct {
		level Priority
		want  float64
	}{
		{P1Resuscitation, 0},
		{P2Emergent, 15},
		{P3Urgent, 30},
		{P4LessUrgent, 60},
		{P5NonUrgent, 120},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.level.MaxWaitTime(), "max wait for %s", tc.level)
	}
}

func TestPriority_MeanTreatmentTime_PerLevel(t *testing.T) {
	cases := []struct {
		level Priority
		want  float64
	}{
		{P1Resuscitation, 120},
		{P2Emergent, 90},
		{P3Urgent, 60},
		{P4LessUrgent, 45},
		{P5NonUrgent, 30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.level.MeanTreatmentTime(), "mean treatment for %s", tc.level)
	}
}

func TestPriority_Escalate_MovesTowardP1(t *testing.T) {
	assert.Equal(t, P4LessUrgent, P5NonUrgent.Escalate())
	assert.Equal(t, P1Resuscitation, P2Emergent.Escalate())
}

func TestPriority_Escalate_P1IsFloor(t *testing.T) {
	assert.Equal(t, P1Resuscitation, P1Resuscitation.Escalate())
}

func TestPriority_Valid(t *testing.T) {
	for _, level := range Priorities {
		assert.True(t, level.Valid())
	}
	assert.False(t, Priority(0).Valid())
	assert.False(t, Priority(6).Valid())
}
