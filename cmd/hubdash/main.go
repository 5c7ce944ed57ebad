package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hubdash/internal/config"
	"github.com/jask/hubdash/internal/content"
	"github.com/jask/hubdash/internal/journal"
	"github.com/jask/hubdash/internal/logging"
	"github.com/jask/hubdash/internal/section"
	"github.com/jask/hubdash/internal/shell"
	"github.com/jask/hubdash/internal/viewstate"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logCloser.Close()

	rec, storeCloser, err := openJournal(cfg.Journal, logging.Component(logger, "journal"))
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	defer storeCloser.Close()
	defer rec.Close()

	reg := section.NewRegistry(section.Providers{
		Overview:  content.NewOverview(),
		Analytics: content.NewAnalytics(rec, nil),
		Plugins:   content.NewPlugins(),
	}).WithDefault(cfg.DefaultSection())

	coord := viewstate.New(reg,
		viewstate.WithScheduler(viewstate.NewTimerScheduler(ctx)),
		viewstate.WithTimings(cfg.Timings()),
		viewstate.WithObserver(rec.Observe),
		viewstate.WithLogger(logging.Component(logger, "viewstate")),
		viewstate.WithStrict(cfg.Shell.Strict),
	)
	defer coord.Teardown()

	bindings := shell.DefaultKeyBindings()
	if unknown := shell.UnknownActions(bindings, cfg.Keys); len(unknown) > 0 {
		logger.Warn("ignoring key overrides for unknown actions", "actions", unknown)
	}
	model := shell.NewModel(coord,
		shell.NewKeyRegistry(shell.ApplyActionKeybindings(bindings, cfg.Keys)),
		shell.NewCommandRegistry(shell.DefaultCommands()),
		shell.WithExporter(rec, cfg.Journal.TraceDir),
		shell.WithLogger(logging.Component(logger, "shell")),
	)

	logger.Info("starting", "session", rec.Session(), "default_section", reg.Default().String())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openJournal(cfg config.JournalConfig, logger *slog.Logger) (*journal.Recorder, io.Closer, error) {
	if cfg.Path == "" {
		return journal.NewRecorder(cfg.Capacity, journal.WithLogger(logger)), io.NopCloser(nil), nil
	}
	repo, closer, err := journal.OpenStore(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	rec := journal.NewRecorder(cfg.Capacity, journal.WithStore(repo), journal.WithLogger(logger))
	return rec, closer, nil
}

