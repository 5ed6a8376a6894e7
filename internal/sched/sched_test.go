package sched

import "testing"

func TestSchedulerRunsInTimeOrder(t *testing.T) {
	s := New()
	var order []string

	s.After(0.3, func() { order = append(order, "c") })
	s.After(0.1, func() { order = append(order, "a") })
	s.After(0.2, func() { order = append(order, "b") })

	if ran := s.Advance(0.15); ran != 1 {
		t.Fatalf("Advance(0.15) ran %d actions, expected 1", ran)
	}
	s.Advance(0.5)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], want[i])
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerSameTimeKeepsInsertionOrder(t *testing.T) {
	s := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(0.1, func() { order = append(order, i) })
	}
	s.Advance(0.1)
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, expected ascending", order)
		}
	}
}

func TestSchedulerNextTickDefersToFollowingAdvance(t *testing.T) {
	s := New()
	ticks := 0
	var step func()
	step = func() {
		ticks++
		if ticks < 3 {
			s.NextTick(step)
		}
	}
	s.NextTick(step)

	for i := 1; i <= 3; i++ {
		s.Advance(1.0 / 60.0)
		if ticks != i {
			t.Fatalf("after advance %d, ticks = %d", i, ticks)
		}
	}
	s.Advance(1.0 / 60.0)
	if ticks != 3 {
		t.Errorf("ticks = %d after chain ended, expected 3", ticks)
	}
}

func TestSchedulerClockIsMonotonic(t *testing.T) {
	s := New()
	s.Advance(0.5)
	s.Advance(-1)
	if s.Now() != 0.5 {
		t.Errorf("Now() = %v, expected 0.5", s.Now())
	}
}

func TestSchedulerReset(t *testing.T) {
	s := New()
	fired := false
	s.After(0.1, func() { fired = true })
	s.Reset()
	s.Advance(1)
	if fired {
		t.Error("Reset should drop pending actions")
	}
	if s.Now() != 1 {
		t.Errorf("Now() = %v, expected 1", s.Now())
	}
}
