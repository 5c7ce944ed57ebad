package viewstate

import "time"

// ReadyMsg is delivered by the loader's timer.
type ReadyMsg struct {
	Token Token
}

// PhaseElapsedMsg is delivered when a phase timer on Axis runs out.
type PhaseElapsedMsg struct {
	Axis  Axis
	Token Token
}

// Event is published to observers every time an axis enters a phase,
// including the final return to PhaseIdle.
type Event struct {
	Axis  Axis
	Phase Phase
	From  string
	To    string
	Token Token
	At    time.Time
}
