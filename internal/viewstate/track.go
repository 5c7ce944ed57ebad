package viewstate

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TrackState is what an axis is showing right now. From is the target being
// left and To the latest requested target.
type TrackState[T comparable] struct {
	Phase Phase
	From  T
	To    T
	Token Token
}

// Visible returns the target currently on screen: the old one while holding
// or exiting, the new one otherwise.
func (s TrackState[T]) Visible() T {
	if s.Phase == PhaseHold || s.Phase == PhaseExiting {
		return s.From
	}
	return s.To
}

func (s TrackState[T]) Active() bool { return s.Phase != PhaseIdle }

// Track sequences transitions on one axis. At most one transition is in flight;
// Begin while another is running supersedes it.
type Track[T comparable] struct {
	axis   Axis
	timing Timing
	sched  Scheduler
	label  func(T) string
	emit   func(Event)
	now    func() time.Time
	state  TrackState[T]
	timer  Timer
}

func newTrack[T comparable](axis Axis, timing Timing, initial T, sched Scheduler, label func(T) string, emit func(Event), now func() time.Time) *Track[T] {
	return &Track[T]{
		axis:   axis,
		timing: timing,
		sched:  sched,
		label:  label,
		emit:   emit,
		now:    now,
		state:  TrackState[T]{Phase: PhaseIdle, From: initial, To: initial},
	}
}

func (t *Track[T]) State() TrackState[T] { return t.state }

// Begin starts a transition towards to and reports whether an in-flight one
// was superseded. The new transition exits whatever is on screen now, so a
// superseded target that never became visible is never shown. The returned
// command is the first phase timer, or nil when every phase has zero length.
func (t *Track[T]) Begin(to T) (tea.Cmd, bool) {
	superseded := t.state.Phase != PhaseIdle
	t.timer.Stop()
	t.timer = Timer{}
	t.state = TrackState[T]{
		Phase: PhaseIdle,
		From:  t.state.Visible(),
		To:    to,
		Token: NewToken(),
	}
	return t.advance(), superseded
}

// Elapsed moves past the current phase when tok is the live token. A stale
// token, or one arriving while idle, reports false and changes nothing.
func (t *Track[T]) Elapsed(tok Token) (tea.Cmd, bool) {
	if t.state.Phase == PhaseIdle || tok != t.state.Token {
		return nil, false
	}
	t.timer = Timer{}
	return t.advance(), true
}

// Cancel stops the pending phase timer and invalidates the token. The visible
// phase is left as it was.
func (t *Track[T]) Cancel() {
	t.timer.Stop()
	t.timer = Timer{}
	t.state.Token = Token{}
}

func (t *Track[T]) advance() tea.Cmd {
	next := 0
	for i, p := range phaseOrder {
		if p == t.state.Phase {
			next = i + 1
			break
		}
	}
	for ; next < len(phaseOrder); next++ {
		p := phaseOrder[next]
		d := t.timing.duration(p)
		if d <= 0 {
			continue
		}
		t.enter(p)
		t.timer = t.sched.After(d, PhaseElapsedMsg{Axis: t.axis, Token: t.state.Token})
		return t.timer.Cmd
	}
	t.enter(PhaseIdle)
	return nil
}

func (t *Track[T]) enter(p Phase) {
	t.state.Phase = p
	if t.emit == nil {
		return
	}
	t.emit(Event{
		Axis:  t.axis,
		Phase: p,
		From:  t.label(t.state.From),
		To:    t.label(t.state.To),
		Token: t.state.Token,
		At:    t.now(),
	})
}
