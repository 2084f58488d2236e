// Implements the simulation clock and the event queue that drives it.
// All apparent concurrency in the simulation is expressed through
// future-scheduled entries here; exactly one action executes at a time.

package sim

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidDelay is returned by Schedule when a negative delay is requested.
// A negative delay indicates an internal logic defect, never a runtime
// condition of the modeled system.
var ErrInvalidDelay = errors.New("schedule: negative delay")

// Action is the body of a scheduled event. Recurring processes are expressed
// as actions that re-schedule their own next occurrence before returning.
type Action func()

// event is a single pending entry in the event queue.
type event struct {
	time   float64 // due time in simulated minutes
	seq    uint64  // insertion sequence, breaks same-instant ties
	action Action
}

// eventHeap implements heap.Interface with deterministic ordering.
// Ordering: due time → insertion sequence (earlier-scheduled fires first).
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return item
}

// Clock owns the current simulated time and the queue of pending events.
// Time is a non-negative real number of minutes and only moves forward.
type Clock struct {
	now     float64
	nextSeq uint64
	events  eventHeap
}

// NewClock creates a clock at time zero with an empty event queue.
func NewClock() *Clock {
	c := &Clock{events: make(eventHeap, 0)}
	heap.Init(&c.events)
	return c
}

// Now returns the current simulated time in minutes.
func (c *Clock) Now() float64 {
	return c.now
}

// Pending returns the number of events not yet fired.
func (c *Clock) Pending() int {
	return len(c.events)
}

// Schedule enqueues an action to fire delay minutes from now.
// Same-instant events fire in the order they were scheduled.
func (c *Clock) Schedule(delay float64, action Action) error {
	if delay < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelay, delay)
	}
	c.nextSeq++
	heap.Push(&c.events, &event{
		time:   c.now + delay,
		seq:    c.nextSeq,
		action: action,
	})
	return nil
}

// mustSchedule panics on a scheduling error. Internal processes compute their
// own delays; a negative one is an invariant violation, not a user error.
func (c *Clock) mustSchedule(delay float64, action Action) {
	if err := c.Schedule(delay, action); err != nil {
		panic(err)
	}
}

// RunUntil pops due events in order, advancing the clock to each event's due
// time before invoking its action, until the queue is empty or the next due
// time exceeds horizon. Events still pending past the horizon never fire.
func (c *Clock) RunUntil(horizon float64) {
	for len(c.events) > 0 {
		next := c.events[0]
		if next.time > horizon {
			break
		}
		ev := heap.Pop(&c.events).(*event)
		if ev.time < c.now {
			panic(fmt.Sprintf("clock went backwards: %v < %v", ev.time, c.now))
		}
		c.now = ev.time
		logrus.Debugf("[t=%07.1f] firing event seq=%d", c.now, ev.seq)
		ev.action()
	}
	if horizon > c.now {
		c.now = horizon
	}
}
