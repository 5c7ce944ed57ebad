package viewstate

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/section"
)

// capturingScheduler remembers every message it was asked to deliver so tests
// can replay stale ones after supersession or teardown.
type capturingScheduler struct {
	*ManualScheduler
	sent []tea.Msg
}

func (s *capturingScheduler) After(d time.Duration, msg tea.Msg) Timer {
	s.sent = append(s.sent, msg)
	return s.ManualScheduler.After(d, msg)
}

type harness struct {
	t      *testing.T
	c      *Coordinator
	sched  *capturingScheduler
	events []Event
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{t: t, sched: &capturingScheduler{ManualScheduler: NewManualScheduler()}}
	base := []Option{
		WithScheduler(h.sched),
		WithObserver(func(ev Event) { h.events = append(h.events, ev) }),
		WithStrict(true),
	}
	h.c = New(section.NewRegistry(section.Providers{}), append(base, opts...)...)
	return h
}

func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d, func(msg tea.Msg) { h.c.Update(msg) })
}

// ready starts the shell and runs the gate transition to completion.
func (h *harness) ready() {
	h.c.Start()
	tm := h.c.Timings()
	h.advance(tm.LoadDelay + tm.Gate.Total())
	h.events = nil
}

func (h *harness) axisEvents(axis Axis) []Event {
	var out []Event
	for _, ev := range h.events {
		if ev.Axis == axis {
			out = append(out, ev)
		}
	}
	return out
}

func phases(evs []Event) []Phase {
	out := make([]Phase, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Phase)
	}
	return out
}

func (h *harness) lastReady() ReadyMsg {
	for i := len(h.sched.sent) - 1; i >= 0; i-- {
		if m, ok := h.sched.sent[i].(ReadyMsg); ok {
			return m
		}
	}
	h.t.Fatalf("no ready message was scheduled")
	return ReadyMsg{}
}

func (h *harness) elapsedFor(axis Axis) []PhaseElapsedMsg {
	var out []PhaseElapsedMsg
	for _, msg := range h.sched.sent {
		if m, ok := msg.(PhaseElapsedMsg); ok && m.Axis == axis {
			out = append(out, m)
		}
	}
	return out
}
