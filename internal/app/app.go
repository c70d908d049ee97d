package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/anditko/docnav/internal/content"
	"github.com/anditko/docnav/internal/docs"
	"github.com/anditko/docnav/internal/logging"
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/nav"
	"github.com/anditko/docnav/internal/prefs"
	"github.com/anditko/docnav/internal/thememode"
	"github.com/anditko/docnav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Config describes user-provided application options.
type Config struct {
	DocsDir     string
	StateDBPath string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool

	Title         string
	Nav           []nav.Item
	Breakpoint    int
	HideOnScroll  bool
	RespectSystem bool
	DisableSwitch bool
	PersistTheme  bool
	DefaultMode   string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	// A missing or unwritable preference database degrades the theme store
	// to in-memory only; it never blocks startup.
	var persistence thememode.Persistence
	store, err := prefs.Open(cfg.StateDBPath)
	if err != nil {
		logging.Error(fmt.Errorf("preference store unavailable: %w", err))
	} else {
		persistence = prefs.ThemeSlot{Store: store}
		defer store.Close()
	}

	defaultMode, _ := thememode.ParseMode(cfg.DefaultMode)
	themeStore := thememode.NewStore(persistence, systemProbe, thememode.Options{
		RespectSystem: cfg.RespectSystem,
		DisableSwitch: cfg.DisableSwitch,
		Persist:       cfg.PersistTheme,
		Default:       defaultMode,
	})
	themeStore.Initialize()

	sections := cfg.Nav
	if len(sections) == 0 {
		scanned, err := docs.Scan(cfg.DocsDir)
		if err != nil {
			return fmt.Errorf("scan docs: %w", err)
		}
		sections = scanned
	}

	var watcher *docs.Watcher
	if len(cfg.Nav) == 0 {
		watcher, err = docs.NewWatcher(cfg.DocsDir, 250*time.Millisecond)
		if err != nil {
			// Degraded mode: no live refresh, the scanned tree stands.
			logging.Error(fmt.Errorf("docs watcher unavailable: %w", err))
			events.Docs.WatchError(err)
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(ui.Options{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Verbose:       cfg.Verbose,
		Breakpoint:    cfg.Breakpoint,
		HideOnScroll:  cfg.HideOnScroll,
		DisableSwitch: cfg.DisableSwitch,
	}, themeStore, sections, content.NewGlamour(), watcher)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func systemProbe() (bool, bool) {
	return termenv.HasDarkBackground(), true
}
