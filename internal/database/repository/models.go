package repository

import "time"

// Transition represents one journal row: an axis entering a phase.
type Transition struct {
	SessionID string
	Seq       int64
	Axis      string
	Phase     string
	From      string
	To        string
	Token     string
	At        time.Time
}
