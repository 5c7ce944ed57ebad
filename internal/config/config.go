package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/hubdash/internal/section"
	"github.com/jask/hubdash/internal/viewstate"
)

// Config holds application configuration.
type Config struct {
	Shell   ShellConfig         `mapstructure:"shell"`
	Keys    map[string][]string `mapstructure:"keys"`
	Journal JournalConfig       `mapstructure:"journal"`
	Log     LogConfig           `mapstructure:"log"`
}

// ShellConfig holds the loading gate and transition timings.
type ShellConfig struct {
	LoadDelay      time.Duration `mapstructure:"load_delay"`
	DefaultSection string        `mapstructure:"default_section"`
	Strict         bool          `mapstructure:"strict"`
	Gate           PhaseConfig   `mapstructure:"gate"`
	Section        PhaseConfig   `mapstructure:"section"`
	Overlay        PhaseConfig   `mapstructure:"overlay"`
}

// PhaseConfig holds one axis' phase lengths. Offsets are terminal rows.
type PhaseConfig struct {
	Hold        time.Duration `mapstructure:"hold"`
	Exit        time.Duration `mapstructure:"exit"`
	Enter       time.Duration `mapstructure:"enter"`
	ExitOffset  int           `mapstructure:"exit_offset"`
	EnterOffset int           `mapstructure:"enter_offset"`
}

// JournalConfig holds transition journal settings. An empty Path keeps the
// journal in memory only.
type JournalConfig struct {
	Path     string `mapstructure:"path"`
	Capacity int    `mapstructure:"capacity"`
	TraceDir string `mapstructure:"trace_dir"`
}

// LogConfig holds log file settings. An empty Path discards logs.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix HUBDASH_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HUBDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hubdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HUBDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	def := viewstate.DefaultTimings()
	v.SetDefault("shell.load_delay", def.LoadDelay)
	v.SetDefault("shell.default_section", section.Overview.String())
	v.SetDefault("shell.strict", false)
	v.SetDefault("shell.gate.hold", def.Gate.Hold)
	v.SetDefault("shell.gate.exit", def.Gate.Exit)
	v.SetDefault("shell.gate.enter", def.Gate.Enter)
	v.SetDefault("shell.section.exit", def.Section.Exit)
	v.SetDefault("shell.section.enter", def.Section.Enter)
	v.SetDefault("shell.section.exit_offset", def.Section.ExitOffset)
	v.SetDefault("shell.section.enter_offset", def.Section.EnterOffset)
	v.SetDefault("shell.overlay.exit", def.Overlay.Exit)
	v.SetDefault("shell.overlay.enter", def.Overlay.Enter)

	v.SetDefault("journal.path", "")
	v.SetDefault("journal.capacity", 512)
	v.SetDefault("journal.trace_dir", filepath.Join(os.Getenv("HOME"), ".local", "state", "hubdash"))

	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
}

// Validate rejects values the shell cannot run with.
func (c Config) Validate() error {
	if _, ok := section.Parse(c.Shell.DefaultSection); !ok {
		return fmt.Errorf("shell.default_section: unknown section %q", c.Shell.DefaultSection)
	}
	durations := map[string]time.Duration{
		"shell.load_delay":    c.Shell.LoadDelay,
		"shell.gate.hold":     c.Shell.Gate.Hold,
		"shell.gate.exit":     c.Shell.Gate.Exit,
		"shell.gate.enter":    c.Shell.Gate.Enter,
		"shell.section.hold":  c.Shell.Section.Hold,
		"shell.section.exit":  c.Shell.Section.Exit,
		"shell.section.enter": c.Shell.Section.Enter,
		"shell.overlay.hold":  c.Shell.Overlay.Hold,
		"shell.overlay.exit":  c.Shell.Overlay.Exit,
		"shell.overlay.enter": c.Shell.Overlay.Enter,
	}
	for key, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s: negative duration %s", key, d)
		}
	}
	if c.Journal.Capacity <= 0 {
		return fmt.Errorf("journal.capacity: must be positive, got %d", c.Journal.Capacity)
	}
	return nil
}

// DefaultSection returns the configured start section, falling back to overview.
func (c Config) DefaultSection() section.ID {
	id, ok := section.Parse(c.Shell.DefaultSection)
	if !ok {
		return section.Overview
	}
	return id
}

// Timings converts the shell settings into coordinator timings.
func (c Config) Timings() viewstate.Timings {
	return viewstate.Timings{
		LoadDelay: c.Shell.LoadDelay,
		Gate:      c.Shell.Gate.timing(),
		Section:   c.Shell.Section.timing(),
		Overlay:   c.Shell.Overlay.timing(),
	}
}

func (p PhaseConfig) timing() viewstate.Timing {
	return viewstate.Timing{
		Hold:        p.Hold,
		Exit:        p.Exit,
		Enter:       p.Enter,
		ExitOffset:  p.ExitOffset,
		EnterOffset: p.EnterOffset,
	}
}
