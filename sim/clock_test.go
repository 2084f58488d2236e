package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_Schedule_NegativeDelay_Fails(t *testing.T) {
	c := NewClock()

	err := c.Schedule(-1, func() {})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDelay)
	assert.Equal(t, 0, c.Pending())
}

func TestClock_RunUntil_FiresInDueTimeOrder(t *testing.T) {
	// GIVEN events scheduled out of due-time order
	c := NewClock()
	var fired []string
	require.NoError(t, c.Schedule(30, func() { fired = append(fired, "late") }))
	require.NoError(t, c.Schedule(10, func() { fired = append(fired, "early") }))
	require.NoError(t, c.Schedule(20, func() { fired = append(fired, "middle") }))

	// WHEN the loop runs
	c.RunUntil(100)

	// THEN actions fire by due time
	assert.Equal(t, []string{"early", "middle", "late"}, fired)
}

func TestClock_RunUntil_SameInstant_EarlierScheduledFirst(t *testing.T) {
	// GIVEN three events due at the same instant
	c := NewClock()
	var fired []int
	for i := 0; i < 3; i++ {
		i := i
		require.NoError(t, c.Schedule(5, func() { fired = append(fired, i) }))
	}

	c.RunUntil(100)

	// THEN insertion order breaks the tie
	assert.Equal(t, []int{0, 1, 2}, fired)
}

func TestClock_RunUntil_AdvancesTimeMonotonically(t *testing.T) {
	c := NewClock()
	var seen []float64
	require.NoError(t, c.Schedule(10, func() { seen = append(seen, c.Now()) }))
	require.NoError(t, c.Schedule(25, func() { seen = append(seen, c.Now()) }))

	c.RunUntil(100)

	assert.Equal(t, []float64{10, 25}, seen)
	assert.Equal(t, 100.0, c.Now(), "clock rests at the horizon when events run out")
}

func TestClock_RunUntil_StopsAtHorizon(t *testing.T) {
	// GIVEN one event inside and one past the horizon
	c := NewClock()
	var fired []string
	require.NoError(t, c.Schedule(40, func() { fired = append(fired, "inside") }))
	require.NoError(t, c.Schedule(60, func() { fired = append(fired, "outside") }))

	c.RunUntil(50)

	// THEN the past-horizon event never fires
	assert.Equal(t, []string{"inside"}, fired)
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, 50.0, c.Now())
}

func TestClock_SelfRescheduling_ExpressesRecurringProcess(t *testing.T) {
	// GIVEN an action that re-enqueues its own next occurrence
	c := NewClock()
	count := 0
	var tick Action
	tick = func() {
		count++
		c.mustSchedule(10, tick)
	}
	require.NoError(t, c.Schedule(10, tick))

	c.RunUntil(45)

	// THEN it fired at 10, 20, 30, 40
	assert.Equal(t, 4, count)
}

func TestClock_ActionSchedulingAtCurrentInstant_FiresSameRun(t *testing.T) {
	c := NewClock()
	var fired []string
	require.NoError(t, c.Schedule(10, func() {
		fired = append(fired, "first")
		c.mustSchedule(0, func() { fired = append(fired, "chained") })
	}))

	c.RunUntil(10)

	assert.Equal(t, []string{"first", "chained"}, fired)
}
