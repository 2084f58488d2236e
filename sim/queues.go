// Implements the WaitingQueues, which hold all patients waiting for
// treatment. One FIFO queue per triage level; insertion order within a level
// is preserved, and a patient appears in exactly one queue while waiting.

package sim

import (
	"fmt"
	"strings"
)

// WaitingQueues is the set of per-priority FIFO queues of waiting patients.
type WaitingQueues struct {
	queues [NumPriorities][]*Patient
}

// NewWaitingQueues creates empty queues for all triage levels.
func NewWaitingQueues() *WaitingQueues {
	return &WaitingQueues{}
}

func (wq *WaitingQueues) idx(p Priority) int {
	if !p.Valid() {
		panic(fmt.Sprintf("invalid priority %d", int(p)))
	}
	return int(p) - 1
}

// Enqueue appends the patient to the back of its current priority's queue.
func (wq *WaitingQueues) Enqueue(p *Patient) {
	i := wq.idx(p.Priority)
	wq.queues[i] = append(wq.queues[i], p)
}

// Remove takes the patient out of the given level's queue and reports whether
// it was found there.
func (wq *WaitingQueues) Remove(p *Patient, level Priority) bool {
	i := wq.idx(level)
	for j, cand := range wq.queues[i] {
		if cand == p {
			wq.queues[i] = append(wq.queues[i][:j], wq.queues[i][j+1:]...)
			return true
		}
	}
	return false
}

// Move transfers the patient from one level's queue to another, preserving
// FIFO order within the destination level.
func (wq *WaitingQueues) Move(p *Patient, from, to Priority) {
	if !wq.Remove(p, from) {
		panic(fmt.Sprintf("patient %d not waiting at %s", p.ID, from))
	}
	i := wq.idx(to)
	wq.queues[i] = append(wq.queues[i], p)
}

// AtLevel returns the queue contents for one triage level. The returned slice
// is the queue's internal storage -- callers within the sim package may
// iterate over it but MUST NOT append to or reslice it.
func (wq *WaitingQueues) AtLevel(level Priority) []*Patient {
	return wq.queues[wq.idx(level)]
}

// All returns every waiting patient flattened across levels, most urgent
// level first, FIFO within each level.
func (wq *WaitingQueues) All() []*Patient {
	out := make([]*Patient, 0, wq.Len())
	for i := range wq.queues {
		out = append(out, wq.queues[i]...)
	}
	return out
}

// FindByID returns the waiting patient with the given id, or nil if no queue
// holds it (already assigned or discharged).
func (wq *WaitingQueues) FindByID(id int) *Patient {
	for i := range wq.queues {
		for _, p := range wq.queues[i] {
			if p.ID == id {
				return p
			}
		}
	}
	return nil
}

// Len returns the total number of waiting patients across all levels.
func (wq *WaitingQueues) Len() int {
	n := 0
	for i := range wq.queues {
		n += len(wq.queues[i])
	}
	return n
}

func (wq *WaitingQueues) String() string {
	var sb strings.Builder
	sb.WriteString("Waiting{")
	for i, level := range Priorities {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s:%d", level, len(wq.queues[i]))
	}
	sb.WriteString("}")
	return sb.String()
}
