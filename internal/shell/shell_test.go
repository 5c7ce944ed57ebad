package shell

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/hubdash/internal/section"
	"github.com/jask/hubdash/internal/viewstate"
)

type stubContent struct {
	title string
	body  string
}

func (s stubContent) Title() string          { return s.title }
func (s stubContent) Render(_, _ int) string { return s.body }

type fakeExporter struct {
	path string
	err  error
	dir  string
}

func (f *fakeExporter) ExportFile(dir string) (string, error) {
	f.dir = dir
	return f.path, f.err
}

type testShell struct {
	t     *testing.T
	m     *Model
	sched *viewstate.ManualScheduler
}

func newTestShell(t *testing.T, opts ...Option) *testShell {
	t.Helper()
	sched := viewstate.NewManualScheduler()
	reg := section.NewRegistry(section.Providers{
		Overview:  stubContent{title: "Overview", body: "overview body"},
		Analytics: stubContent{title: "Analytics", body: "analytics body"},
		Plugins:   stubContent{title: "Plugins", body: "plugins body"},
	})
	coord := viewstate.New(reg, viewstate.WithScheduler(sched), viewstate.WithStrict(true))
	m := NewModel(coord, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(DefaultCommands()), opts...)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Init()
	return &testShell{t: t, m: m, sched: sched}
}

func (s *testShell) advance(d time.Duration) {
	s.sched.Advance(d, func(msg tea.Msg) { s.m.Update(msg) })
}

func (s *testShell) ready() {
	tm := s.m.coord.Timings()
	s.advance(tm.LoadDelay + tm.Gate.Total())
}

func (s *testShell) press(k string) tea.Cmd {
	_, cmd := s.m.Update(keyMsg(k))
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// collect runs cmd one level deep and returns the messages it produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if m := c(); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func TestLoadingShowsSpinnerAndIgnoresKeys(t *testing.T) {
	s := newTestShell(t)
	view := ansi.Strip(s.m.View())
	if !strings.Contains(view, "Loading dashboard") {
		t.Fatalf("expected loading view, got:\n%s", view)
	}
	s.press("2")
	s.press("ctrl+k")
	if s.m.coord.Current() != section.Overview {
		t.Fatalf("selection must be ignored while loading")
	}
	if s.m.coord.OverlayOpen() {
		t.Fatalf("overlay must stay closed while loading")
	}
	if s.m.ActiveScope() != scopeLoading {
		t.Fatalf("unexpected scope %q", s.m.ActiveScope())
	}
}

func TestReadyRendersHeaderAndContent(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	view := ansi.Strip(s.m.View())
	for _, want := range []string{"hubdash", "1:Overview", "3:Plugins", "overview body", "[Overview] Ready"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Loading dashboard") {
		t.Fatalf("spinner should be gone once ready")
	}
}

func TestNumberKeySelectsWithTransition(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("2")
	if s.m.coord.Current() != section.Analytics {
		t.Fatalf("expected analytics, got %s", s.m.coord.Current())
	}
	if got := s.m.coord.Section().Phase; got != viewstate.PhaseExiting {
		t.Fatalf("expected exiting phase, got %s", got)
	}
	s.advance(s.m.coord.Timings().Section.Exit)
	if got := s.m.coord.Section().Phase; got != viewstate.PhaseEntering {
		t.Fatalf("expected entering phase, got %s", got)
	}
	if !strings.Contains(ansi.Strip(s.m.View()), "analytics body") {
		t.Fatalf("entering section should be rendered")
	}
	s.advance(s.m.coord.Timings().Section.Enter)
	if s.m.coord.Section().Active() {
		t.Fatalf("section track should settle")
	}
}

func TestTabCyclesSections(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("shift+tab")
	if s.m.coord.Current() != section.Plugins {
		t.Fatalf("shift+tab from overview should wrap to plugins, got %s", s.m.coord.Current())
	}
	s.press("tab")
	if s.m.coord.Current() != section.Overview {
		t.Fatalf("tab from plugins should wrap to overview, got %s", s.m.coord.Current())
	}
}

func TestPaletteCapturesKeysUntilClosed(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("ctrl+k")
	if !s.m.coord.OverlayOpen() || s.m.ActiveScope() != scopePalette {
		t.Fatalf("ctrl+k should open the palette")
	}
	s.press("q")
	s.press("2")
	if s.m.Quitting() || s.m.coord.Current() != section.Overview {
		t.Fatalf("keys must go to the palette while it is open")
	}
	if s.m.palette.Query() != "q2" {
		t.Fatalf("unexpected palette query %q", s.m.palette.Query())
	}
	s.press("esc")
	if s.m.coord.OverlayOpen() {
		t.Fatalf("esc should close the palette")
	}
	s.press("ctrl+k")
	if s.m.palette.Query() != "" {
		t.Fatalf("reopening should reset the query")
	}
	s.press("ctrl+k")
	if s.m.coord.OverlayOpen() {
		t.Fatalf("ctrl+k should toggle the palette closed")
	}
}

func TestOverlayRendersOverContent(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("ctrl+k")
	tm := s.m.coord.Timings().Overlay
	s.advance(tm.Exit + tm.Enter)
	view := ansi.Strip(s.m.View())
	if !strings.Contains(view, "Command Palette") {
		t.Fatalf("palette should be visible:\n%s", view)
	}
	s.press("esc")
	s.advance(tm.Exit + tm.Enter)
	if strings.Contains(ansi.Strip(s.m.View()), "Command Palette") {
		t.Fatalf("palette should be gone after closing")
	}
}

func TestPaletteDrawnOverLoadingGate(t *testing.T) {
	s := newTestShell(t)
	tm := s.m.coord.Timings()
	s.advance(tm.LoadDelay + 10*time.Millisecond)
	if s.m.coord.Gate().Phase != viewstate.PhaseHold {
		t.Fatalf("expected gate hold, got %s", s.m.coord.Gate().Phase)
	}
	s.press("ctrl+k")
	s.advance(tm.Overlay.Exit + tm.Overlay.Enter)
	if s.m.coord.Gate().Visible() != viewstate.Loading {
		t.Fatalf("gate should still show the spinner")
	}
	if !strings.Contains(ansi.Strip(s.m.View()), "Command Palette") {
		t.Fatalf("open palette must be drawn over the loading gate")
	}
	s.press("q")
	if s.m.Quitting() || s.m.palette.Query() != "q" {
		t.Fatalf("q should be typed into the visible palette")
	}
}

func TestPaletteEnterRunsCommand(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("ctrl+k")
	for _, r := range "plugins" {
		s.press(string(r))
	}
	cmd := s.press("enter")
	if s.m.coord.OverlayOpen() {
		t.Fatalf("enter should close the palette")
	}
	var exec *CommandExecuteMsg
	for _, msg := range collect(cmd) {
		if e, ok := msg.(CommandExecuteMsg); ok {
			exec = &e
		}
	}
	if exec == nil || exec.CommandID != "section:plugins" {
		t.Fatalf("expected plugins command, got %+v", exec)
	}
	s.m.Update(*exec)
	if s.m.coord.Current() != section.Plugins {
		t.Fatalf("command should select plugins, got %s", s.m.coord.Current())
	}
}

func TestDisabledCommandReportsReason(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	_, cmd := s.m.Update(CommandExecuteMsg{CommandID: "section:overview"})
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0].(StatusMsg).Text != "already active" {
		t.Fatalf("expected disabled reason, got %+v", msgs)
	}
	_, cmd = s.m.Update(CommandExecuteMsg{CommandID: "nope"})
	if got := collect(cmd)[0].(StatusMsg).Text; got != "Unknown command: nope" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestExportTraceCommand(t *testing.T) {
	exp := &fakeExporter{path: "/tmp/trace.yaml"}
	s := newTestShell(t, WithExporter(exp, "/tmp"))
	s.ready()
	_, cmd := s.m.Update(CommandExecuteMsg{CommandID: "trace:export"})
	msg := collect(cmd)[0].(StatusMsg)
	if msg.IsErr || msg.Text != "Trace written to /tmp/trace.yaml" || exp.dir != "/tmp" {
		t.Fatalf("unexpected export status %+v dir=%q", msg, exp.dir)
	}

	exp.err = errors.New("disk full")
	_, cmd = s.m.Update(CommandExecuteMsg{CommandID: "trace:export"})
	msg = collect(cmd)[0].(StatusMsg)
	if !msg.IsErr || !strings.Contains(msg.Text, "disk full") {
		t.Fatalf("expected error status, got %+v", msg)
	}
	s.m.Update(msg)
	if !strings.Contains(ansi.Strip(s.m.View()), "export trace: disk full") {
		t.Fatalf("status bar should show the error")
	}
}

func TestQuitTearsDown(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	cmd := s.press("q")
	if !s.m.Quitting() || !s.m.coord.Disposed() {
		t.Fatalf("quit should tear the coordinator down")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
	if s.m.View() != "Goodbye\n" {
		t.Fatalf("unexpected final view %q", s.m.View())
	}
	s.press("ctrl+c")
	s.advance(time.Second)
}

func TestCommandAfterQuitIgnored(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	s.press("ctrl+c")
	_, cmd := s.m.Update(CommandExecuteMsg{CommandID: "section:plugins"})
	if cmd != nil {
		t.Fatalf("queued command after quit should be dropped")
	}
	if s.m.coord.Current() != section.Overview {
		t.Fatalf("selection must not change after teardown")
	}
}

func TestCtrlCQuitsWhileLoading(t *testing.T) {
	s := newTestShell(t)
	s.press("ctrl+c")
	if !s.m.coord.Disposed() {
		t.Fatalf("ctrl+c should tear down during loading")
	}
	s.advance(5 * time.Second)
	if s.m.coord.Loading() != viewstate.Loading {
		t.Fatalf("ready timer must not fire after teardown")
	}
}

func TestCommandSearchRanking(t *testing.T) {
	s := newTestShell(t)
	s.ready()
	all := s.m.commands.Search("", s.m)
	if len(all) != 5 {
		t.Fatalf("expected 5 commands, got %d", len(all))
	}
	for _, r := range all[:3] {
		if r.Disabled {
			t.Fatalf("enabled commands should sort first: %+v", all)
		}
	}
	for _, r := range all[3:] {
		if !r.Disabled {
			t.Fatalf("disabled commands should sort last: %+v", all)
		}
	}
	fuzzy := s.m.commands.Search("plugns", s.m)
	if len(fuzzy) != 1 || fuzzy[0].CommandID != "section:plugins" {
		t.Fatalf("expected fuzzy match on plugins, got %+v", fuzzy)
	}
	if got := s.m.commands.Search("zzzz", s.m); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(keyMsg("ctrl+k"), actionTogglePalette, scopePalette) {
		t.Fatalf("ctrl+k should work in every scope")
	}
	if reg.IsAction(keyMsg("q"), actionQuit, scopePalette) {
		t.Fatalf("q must not quit from the palette")
	}
	if !reg.IsAction(keyMsg("q"), actionQuit, scopeLoading) {
		t.Fatalf("shell bindings should apply while loading")
	}
	if got := len(reg.HelpBindings(scopePalette)); got != 3 {
		t.Fatalf("expected toggle, close and run in palette help, got %d", got)
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	overrides := map[string][]string{"toggle-palette": {"ctrl+p"}, "bogus": {"x"}}
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), overrides)
	reg := NewKeyRegistry(bindings)
	if reg.IsAction(keyMsg("ctrl+k"), actionTogglePalette, scopeShell) {
		t.Fatalf("override should replace ctrl+k")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlP}, actionTogglePalette, scopeShell) {
		t.Fatalf("override should bind ctrl+p")
	}
	unknown := UnknownActions(bindings, overrides)
	if len(unknown) != 1 || unknown[0] != "bogus" {
		t.Fatalf("unexpected unknown actions %v", unknown)
	}
}
