package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/section"
)

var (
	// ErrDisposed marks a mutation attempted after Teardown.
	ErrDisposed = errors.New("viewstate: coordinator used after teardown")
	// ErrMalformedToken marks a timer message with a zero token or an unknown axis.
	ErrMalformedToken = errors.New("viewstate: malformed transition token")
)

// Option configures a Coordinator.
type Option func(*Coordinator)

func WithScheduler(s Scheduler) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.sched = s
		}
	}
}

func WithTimings(t Timings) Option {
	return func(c *Coordinator) { c.timings = t }
}

// WithObserver registers fn to receive every phase event.
func WithObserver(fn func(Event)) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrict makes contract violations panic instead of being logged.
func WithStrict(strict bool) Option {
	return func(c *Coordinator) { c.strict = strict }
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// Coordinator owns the shell's view state: the loading gate, the active
// section, the overlay flag, and one transition track per axis.
type Coordinator struct {
	registry  *section.Registry
	timings   Timings
	sched     Scheduler
	now       func() time.Time
	logger    *slog.Logger
	strict    bool
	observers []func(Event)

	loader   Loader
	selector *Selector
	overlay  Overlay

	gate         *Track[LoadingState]
	sectionTrack *Track[section.ID]
	overlayTrack *Track[bool]

	mounted  bool
	disposed bool
}

func New(reg *section.Registry, opts ...Option) *Coordinator {
	if reg == nil {
		reg = section.NewRegistry(section.Providers{})
	}
	c := &Coordinator{
		registry: reg,
		timings:  DefaultTimings(),
		sched:    NewTimerScheduler(context.Background()),
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.selector = NewSelector(reg.Default())
	c.gate = newTrack(AxisGate, c.timings.Gate, Loading, c.sched, LoadingState.String, c.publish, c.now)
	c.sectionTrack = newTrack(AxisSection, c.timings.Section, reg.Default(), c.sched, section.ID.String, c.publish, c.now)
	c.overlayTrack = newTrack(AxisOverlay, c.timings.Overlay, false, c.sched, overlayLabel, c.publish, c.now)
	return c
}

// Start mounts the shell and schedules the loading gate. Later calls are no-ops.
func (c *Coordinator) Start() tea.Cmd {
	if !c.live("start") || c.mounted {
		return nil
	}
	c.mounted = true
	c.logger.Debug("shell mounted", "load_delay", c.timings.LoadDelay)
	return c.loader.Start(c.sched, c.timings.LoadDelay)
}

// Update consumes the coordinator's own timer messages. Anything else is
// ignored and yields nil.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReadyMsg:
		return c.handleReady(msg)
	case PhaseElapsedMsg:
		return c.handleElapsed(msg)
	}
	return nil
}

func (c *Coordinator) handleReady(msg ReadyMsg) tea.Cmd {
	if c.disposed {
		return nil
	}
	if msg.Token.IsZero() {
		c.violation(fmt.Errorf("%w: ready message", ErrMalformedToken))
		return nil
	}
	if !c.loader.Fire(msg.Token) {
		c.logger.Debug("stale ready token", "token", msg.Token.String())
		return nil
	}
	c.logger.Info("shell ready")
	cmd, _ := c.gate.Begin(Ready)
	return cmd
}

func (c *Coordinator) handleElapsed(msg PhaseElapsedMsg) tea.Cmd {
	if c.disposed {
		return nil
	}
	if msg.Token.IsZero() {
		c.violation(fmt.Errorf("%w: %s phase", ErrMalformedToken, msg.Axis))
		return nil
	}
	var (
		cmd tea.Cmd
		ok  bool
	)
	switch msg.Axis {
	case AxisGate:
		cmd, ok = c.gate.Elapsed(msg.Token)
	case AxisSection:
		cmd, ok = c.sectionTrack.Elapsed(msg.Token)
	case AxisOverlay:
		cmd, ok = c.overlayTrack.Elapsed(msg.Token)
	default:
		c.violation(fmt.Errorf("%w: unknown axis %q", ErrMalformedToken, msg.Axis))
		return nil
	}
	if !ok {
		c.logger.Debug("stale phase token", "axis", msg.Axis, "token", msg.Token.String())
	}
	return cmd
}

// Select makes id the active section. It is ignored while loading and when id
// is already active.
func (c *Coordinator) Select(id section.ID) tea.Cmd {
	if !c.live("select") {
		return nil
	}
	if c.loader.State() != Ready {
		c.logger.Debug("select ignored while loading", "section", id.String())
		return nil
	}
	if !c.selector.Select(id) {
		return nil
	}
	cmd, superseded := c.sectionTrack.Begin(id)
	if superseded {
		c.logger.Debug("section transition superseded", "section", id.String())
	}
	return cmd
}

func (c *Coordinator) OpenOverlay() tea.Cmd {
	return c.changeOverlay("open overlay", c.overlay.Open)
}

func (c *Coordinator) CloseOverlay() tea.Cmd {
	return c.changeOverlay("close overlay", c.overlay.Close)
}

func (c *Coordinator) ToggleOverlay() tea.Cmd {
	return c.changeOverlay("toggle overlay", c.overlay.Toggle)
}

func (c *Coordinator) changeOverlay(op string, change func(LoadingState) bool) tea.Cmd {
	if !c.live(op) {
		return nil
	}
	if !change(c.loader.State()) {
		if c.loader.State() != Ready {
			c.logger.Debug("overlay call ignored while loading", "op", op)
		}
		return nil
	}
	cmd, _ := c.overlayTrack.Begin(c.overlay.IsOpen())
	return cmd
}

// Teardown cancels every pending timer and disposes the coordinator. Timer
// messages that still arrive are dropped. Calling it again is a no-op.
func (c *Coordinator) Teardown() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.loader.Cancel()
	c.gate.Cancel()
	c.sectionTrack.Cancel()
	c.overlayTrack.Cancel()
	c.logger.Debug("shell torn down")
}

func (c *Coordinator) Loading() LoadingState { return c.loader.State() }

func (c *Coordinator) Current() section.ID { return c.selector.Current() }

func (c *Coordinator) OverlayOpen() bool { return c.overlay.IsOpen() }

func (c *Coordinator) Disposed() bool { return c.disposed }

func (c *Coordinator) Registry() *section.Registry { return c.registry }

func (c *Coordinator) Timings() Timings { return c.timings }

func (c *Coordinator) Gate() TrackState[LoadingState] { return c.gate.State() }

func (c *Coordinator) Section() TrackState[section.ID] { return c.sectionTrack.State() }

func (c *Coordinator) Overlay() TrackState[bool] { return c.overlayTrack.State() }

// VisibleContent is the section content currently on screen, which during an
// exit is the section being left.
func (c *Coordinator) VisibleContent() section.Content {
	return c.registry.Get(c.sectionTrack.State().Visible())
}

func (c *Coordinator) live(op string) bool {
	if c.disposed {
		c.violation(fmt.Errorf("%w: %s", ErrDisposed, op))
		return false
	}
	return true
}

func (c *Coordinator) violation(err error) {
	if c.strict {
		panic(err)
	}
	c.logger.Error("view state contract violation", "error", err)
}

func (c *Coordinator) publish(ev Event) {
	for _, fn := range c.observers {
		fn(ev)
	}
}

func overlayLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
