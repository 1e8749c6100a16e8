package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument reports a non-positive delay or period passed to a timer
var ErrInvalidArgument = errors.New("invalid argument")

// Scheduler runs delayed and repeating callbacks on simulated time
// It is single-threaded and advanced only by Update, never by wall-clock reads
//
// Queues:
//   - toAdd: timers scheduled since the last Update, promoted at the start of the next Update
//   - toCancel: timers cancelled while active, removed at the end of an Update
type Scheduler struct {
	now time.Duration

	timers   []*Timer
	toAdd    []*Timer
	toCancel []*Timer

	fired uint64
}

// NewScheduler creates a scheduler at simulated time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Timer is a unit of future work owned by a Scheduler
type Timer struct {
	s  *Scheduler
	fn func()

	next   time.Duration
	period time.Duration // 0 = one-shot

	listed     bool // In s.timers
	queued     bool // In s.toAdd
	cancelling bool // In s.toCancel
}

// NewTimer creates an unscheduled timer that runs fn when it fires
func (s *Scheduler) NewTimer(fn func()) *Timer {
	return &Timer{s: s, fn: fn}
}

// Now returns the simulated time elapsed since creation or the last Clear
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of timers active or waiting to be promoted
func (s *Scheduler) Len() int {
	n := len(s.toAdd)
	for _, t := range s.timers {
		if !t.cancelling {
			n++
		}
	}
	return n
}

// Fired returns the total number of callbacks run
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// Update advances simulated time by delta and fires every due timer
// Timers scheduled during this call are not considered until the next Update
func (s *Scheduler) Update(delta time.Duration) {
	s.now += delta

	// Promote timers scheduled since the last update
	if len(s.toAdd) > 0 {
		pending := s.toAdd
		s.toAdd = nil
		for _, t := range pending {
			t.queued = false
			if t.listed {
				// Cancelled and rescheduled between updates: keep the existing slot
				if t.cancelling {
					t.cancelling = false
					s.toCancel = removeTimer(s.toCancel, t)
				}
				continue
			}
			t.listed = true
			s.timers = append(s.timers, t)
		}
	}

	// Fire without touching the active list, removals wait for the drain below
	for _, t := range s.timers {
		if t.cancelling || s.now < t.next {
			continue
		}
		if t.period > 0 {
			// Next multiple of period strictly after now
			t.next += ((s.now-t.next)/t.period + 1) * t.period
		} else {
			t.Cancel()
		}
		s.fired++
		t.fn()
	}

	if len(s.toCancel) > 0 {
		for _, t := range s.toCancel {
			t.cancelling = false
			t.listed = false
			s.timers = removeTimer(s.timers, t)
		}
		s.toCancel = s.toCancel[:0]
	}
}

// Clear drops every timer and resets simulated time, used at session teardown
func (s *Scheduler) Clear() {
	for _, t := range s.timers {
		t.listed, t.cancelling = false, false
	}
	for _, t := range s.toAdd {
		t.queued = false
	}
	s.timers, s.toAdd, s.toCancel = nil, nil, nil
	s.now = 0
}

// Schedule fires the timer once, delay after the current simulated time
// Any previous scheduling of this timer is cancelled
func (t *Timer) Schedule(delay time.Duration) error {
	if delay <= 0 {
		return fmt.Errorf("%w: delay must be positive, got %v", ErrInvalidArgument, delay)
	}
	t.Cancel()
	t.period = 0
	t.enqueue(delay)
	return nil
}

// ScheduleRepeating fires the timer every period, first at now+period
func (t *Timer) ScheduleRepeating(period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidArgument, period)
	}
	t.Cancel()
	t.period = period
	t.enqueue(period)
	return nil
}

func (t *Timer) enqueue(step time.Duration) {
	t.next = t.s.now + step
	t.queued = true
	t.s.toAdd = append(t.s.toAdd, t)
}

// Cancel stops future firing, safe from inside the timer's own callback
// Repeated calls are no-ops
func (t *Timer) Cancel() {
	if t.queued {
		t.queued = false
		t.s.toAdd = removeTimer(t.s.toAdd, t)
	}
	if t.listed && !t.cancelling {
		t.cancelling = true
		t.s.toCancel = append(t.s.toCancel, t)
	}
}

// Scheduled reports whether the timer will fire in a future Update
func (t *Timer) Scheduled() bool {
	return t.queued || (t.listed && !t.cancelling)
}

// Repeating reports whether the timer was last scheduled with a period
func (t *Timer) Repeating() bool {
	return t.period > 0
}

// NextExecution returns the simulated time of the next firing
func (t *Timer) NextExecution() time.Duration {
	return t.next
}

func removeTimer(list []*Timer, t *Timer) []*Timer {
	for i, item := range list {
		if item == t {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
