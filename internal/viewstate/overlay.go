package viewstate

// Overlay owns the command overlay flag. Every operation takes the gate state
// and is swallowed while Loading.
type Overlay struct {
	open bool
}

func (o *Overlay) IsOpen() bool { return o.open }

func (o *Overlay) Open(gate LoadingState) bool {
	return o.set(gate, true)
}

func (o *Overlay) Close(gate LoadingState) bool {
	return o.set(gate, false)
}

func (o *Overlay) Toggle(gate LoadingState) bool {
	return o.set(gate, !o.open)
}

func (o *Overlay) set(gate LoadingState, open bool) bool {
	if gate != Ready || o.open == open {
		return false
	}
	o.open = open
	return true
}
