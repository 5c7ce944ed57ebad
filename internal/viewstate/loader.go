package viewstate

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Loader owns the loading gate. It flips from Loading to Ready once, when the
// timer scheduled by Start fires, unless Cancel ran first.
type Loader struct {
	state   LoadingState
	token   Token
	timer   Timer
	started bool
}

func (l *Loader) State() LoadingState { return l.state }

// Start schedules the ready timer. Only the first call has an effect.
func (l *Loader) Start(s Scheduler, delay time.Duration) tea.Cmd {
	if l.started {
		return nil
	}
	l.started = true
	l.token = NewToken()
	l.timer = s.After(delay, ReadyMsg{Token: l.token})
	return l.timer.Cmd
}

// Fire flips the gate if tok is the pending ready token.
func (l *Loader) Fire(tok Token) bool {
	if l.state == Ready || tok.IsZero() || tok != l.token {
		return false
	}
	l.state = Ready
	l.timer = Timer{}
	return true
}

// Cancel stops a pending ready timer. The gate stays where it is.
func (l *Loader) Cancel() {
	l.timer.Stop()
	l.timer = Timer{}
	l.token = Token{}
}
