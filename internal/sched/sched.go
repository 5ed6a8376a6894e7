// Package sched provides a deferred-action queue driven by a simulation clock.
//
// Actions are scheduled relative to the current clock time and run from
// Advance, which the owner calls once per tick. There is no cancellation:
// an action runs once its time arrives. An action scheduled while the queue
// is being advanced never runs in that same Advance, so scheduling with a
// zero delay means "next tick".
package sched

import "container/heap"

// Action is a deferred callback.
type Action func()

type item struct {
	at  float64
	seq uint64
	fn  Action
}

type queue []item

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)   { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = item{}
	*q = old[:n-1]
	return it
}

// Scheduler owns a monotonic clock and the actions waiting on it.
type Scheduler struct {
	now   float64
	seq   uint64
	items queue
}

// New returns a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current clock time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of actions that have not run yet.
func (s *Scheduler) Pending() int {
	return len(s.items)
}

// After schedules fn to run once the clock has advanced by delay seconds.
// Negative delays are treated as zero.
func (s *Scheduler) After(delay float64, fn Action) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.items, item{at: s.now + delay, seq: s.seq, fn: fn})
}

// NextTick schedules fn for the next Advance.
func (s *Scheduler) NextTick(fn Action) {
	s.After(0, fn)
}

// Advance moves the clock forward by dt and runs every action that is due,
// in time order. It returns the number of actions run.
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}
	limit := s.seq
	ran := 0
	for len(s.items) > 0 {
		next := s.items[0]
		if next.at > s.now || next.seq > limit {
			break
		}
		heap.Pop(&s.items)
		next.fn()
		ran++
	}
	return ran
}

// Reset drops every pending action and rewinds the clock.
func (s *Scheduler) Reset() {
	s.now = 0
	s.seq = 0
	s.items = s.items[:0]
}
