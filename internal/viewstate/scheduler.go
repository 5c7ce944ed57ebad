package viewstate

import (
	"context"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer is a scheduled message. Cmd must be returned to the Bubble Tea
// runtime; Stop cancels delivery if the timer has not fired yet.
type Timer struct {
	Cmd  tea.Cmd
	stop func()
}

// NewTimer builds a Timer from a command and its cancel function.
func NewTimer(cmd tea.Cmd, stop func()) Timer {
	return Timer{Cmd: cmd, stop: stop}
}

func (t Timer) Stop() {
	if t.stop != nil {
		t.stop()
	}
}

// Scheduler produces one-shot timers that deliver msg after d.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) Timer
}

// TimerScheduler backs timers with time.Timer. Each timer gets its own child
// context, so Stop (or cancelling the parent) ends the waiting goroutine
// without a message.
type TimerScheduler struct {
	ctx context.Context
}

func NewTimerScheduler(ctx context.Context) *TimerScheduler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TimerScheduler{ctx: ctx}
}

func (s *TimerScheduler) After(d time.Duration, msg tea.Msg) Timer {
	ctx, cancel := context.WithCancel(s.ctx)
	cmd := func() tea.Msg {
		defer cancel()
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
	return NewTimer(cmd, cancel)
}

// ManualScheduler keeps timers until Advance moves its clock. It drives the
// coordinator deterministically in tests and trace replays.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	seq     int
	msg     tea.Msg
	stopped bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, msg tea.Msg) Timer {
	s.seq++
	mt := &manualTimer{due: s.now + d, seq: s.seq, msg: msg}
	s.pending = append(s.pending, mt)
	return NewTimer(func() tea.Msg { return nil }, func() { mt.stopped = true })
}

// Now is the time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Pending counts timers that are neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, handing every timer that comes due to
// deliver in due order. Timers scheduled by deliver are honoured within the
// same call when they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration, deliver func(tea.Msg)) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		s.remove(next)
		if deliver != nil {
			deliver(next.msg)
		}
	}
	s.now = target
}

func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(s.pending))
	for _, t := range s.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	if len(live) == 0 || live[0].due > limit {
		return nil
	}
	return live[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
