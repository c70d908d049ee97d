// Package thememode holds the process-wide light/dark mode store. Every
// toggle control in the shell is a view over one Store instance; none keeps a
// private copy of the mode.
package thememode

import (
	"github.com/anditko/docnav/internal/logging"
	"github.com/anditko/docnav/internal/logging/events"
)

// Mode is the active color scheme.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode maps a persisted value back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

// Origin records where the current mode came from.
type Origin int

const (
	OriginDefault Origin = iota
	OriginSystem
	OriginUser
)

func (o Origin) String() string {
	switch o {
	case OriginSystem:
		return "system"
	case OriginUser:
		return "user"
	default:
		return "default"
	}
}

// Persistence is the durable slot for the user's choice. Implementations are
// best-effort: a failing backend degrades the store to in-memory only.
type Persistence interface {
	Load() (value string, ok bool, err error)
	Save(value string) error
}

// SystemProbe reports the OS dark-mode preference. ok is false when the
// preference cannot be determined.
type SystemProbe func() (dark bool, ok bool)

// Options configure store initialization and mutation behaviour.
type Options struct {
	// RespectSystem enables the OS preference fallback during Initialize.
	RespectSystem bool
	// DisableSwitch makes the store read-only after Initialize.
	DisableSwitch bool
	// Persist controls whether user changes are written to the backend.
	// Disabled when the site is configured to follow the system preference
	// without remembering an override.
	Persist bool
	// Default is the mode used when nothing else resolves.
	Default Mode
}

// Store is the single source of truth for the theme mode. It is driven from
// the UI event loop and performs no internal locking; subscribers are
// notified synchronously from SetMode.
type Store struct {
	mode        Mode
	origin      Origin
	opts        Options
	persistence Persistence
	probe       SystemProbe
	initialized bool
	nextSubID   int
	subs        map[int]func(Mode)
}

// NewStore builds a store. persistence and probe may be nil.
func NewStore(p Persistence, probe SystemProbe, opts Options) *Store {
	return &Store{
		mode:        opts.Default,
		origin:      OriginDefault,
		opts:        opts,
		persistence: p,
		probe:       probe,
		subs:        make(map[int]func(Mode)),
	}
}

// Initialize resolves the starting mode: persisted user choice, then system
// preference when enabled, then the configured default. Runs once; later
// calls are no-ops.
func (s *Store) Initialize() {
	if s.initialized {
		return
	}
	s.initialized = true
	s.mode = s.opts.Default
	s.origin = OriginDefault
	if s.persistence != nil {
		value, ok, err := s.persistence.Load()
		if err != nil {
			logging.Error(err)
			events.Theme.PersistError(err)
		} else if ok {
			if mode, valid := ParseMode(value); valid {
				s.mode = mode
				s.origin = OriginUser
				events.Theme.Init(s.mode.String(), s.origin.String())
				return
			}
		}
	}
	if s.opts.RespectSystem && s.probe != nil {
		if dark, ok := s.probe(); ok {
			if dark {
				s.mode = Dark
			} else {
				s.mode = Light
			}
			s.origin = OriginSystem
		}
	}
	events.Theme.Init(s.mode.String(), s.origin.String())
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	return s.mode
}

// Origin returns where the current mode came from.
func (s *Store) Origin() Origin {
	return s.origin
}

// ReadOnly reports whether mutation is disabled.
func (s *Store) ReadOnly() bool {
	return s.opts.DisableSwitch
}

// SetMode overwrites the mode as a user choice, persists it best-effort, and
// notifies all subscribers synchronously. A read-only store ignores the call.
func (s *Store) SetMode(mode Mode) {
	if s.opts.DisableSwitch {
		return
	}
	s.mode = mode
	s.origin = OriginUser
	if s.opts.Persist && s.persistence != nil {
		if err := s.persistence.Save(mode.String()); err != nil {
			logging.Error(err)
			events.Theme.PersistError(err)
		}
	}
	events.Theme.Set(s.mode.String(), s.origin.String())
	for _, fn := range s.subs {
		fn(s.mode)
	}
}

// Toggle flips between light and dark. Two toggles restore both the mode and
// the persisted value.
func (s *Store) Toggle() {
	if s.mode == Light {
		s.SetMode(Dark)
		return
	}
	s.SetMode(Light)
}

// Subscribe registers a listener for mode changes and returns its handle.
func (s *Store) Subscribe(fn func(Mode)) int {
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a listener. Safe to call with an unknown handle.
func (s *Store) Unsubscribe(id int) {
	delete(s.subs, id)
}
