package viewstate

import "time"

// Axis is one independent transition track.
type Axis string

const (
	AxisGate    Axis = "gate"
	AxisSection Axis = "section"
	AxisOverlay Axis = "overlay"
)

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseHold     Phase = "hold"
	PhaseExiting  Phase = "exiting"
	PhaseEntering Phase = "entering"
)

// phaseOrder is the sequence every transition walks; zero-length phases are
// skipped.
var phaseOrder = []Phase{PhaseHold, PhaseExiting, PhaseEntering}

type LoadingState uint8

const (
	Loading LoadingState = iota
	Ready
)

func (s LoadingState) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// Timing bounds the phases of one axis. Offsets are in terminal rows and are
// only read by renderers.
type Timing struct {
	Hold        time.Duration
	Exit        time.Duration
	Enter       time.Duration
	ExitOffset  int
	EnterOffset int
}

func (t Timing) duration(p Phase) time.Duration {
	switch p {
	case PhaseHold:
		return t.Hold
	case PhaseExiting:
		return t.Exit
	case PhaseEntering:
		return t.Enter
	}
	return 0
}

// Total is the time an uninterrupted transition takes.
func (t Timing) Total() time.Duration {
	return t.Hold + t.Exit + t.Enter
}

// Timings groups the loader delay and the per-axis timings.
type Timings struct {
	LoadDelay time.Duration
	Gate      Timing
	Section   Timing
	Overlay   Timing
}

func DefaultTimings() Timings {
	return Timings{
		LoadDelay: time.Second,
		Gate: Timing{
			Hold:  500 * time.Millisecond,
			Exit:  500 * time.Millisecond,
			Enter: 500 * time.Millisecond,
		},
		Section: Timing{
			Exit:        300 * time.Millisecond,
			Enter:       300 * time.Millisecond,
			ExitOffset:  -2,
			EnterOffset: 2,
		},
		Overlay: Timing{
			Exit:  150 * time.Millisecond,
			Enter: 150 * time.Millisecond,
		},
	}
}
