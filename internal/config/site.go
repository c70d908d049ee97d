package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/anditko/docnav/internal/nav"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const defaultBreakpoint = 80

// Site holds the site config file: an optional explicit navigation tree plus
// the shell options.
type Site struct {
	Title string     `koanf:"title"`
	Nav   []NavEntry `koanf:"nav"`

	HideOnScroll              *bool  `koanf:"hide_on_scroll"`
	RespectPrefersColorScheme *bool  `koanf:"respect_prefers_color_scheme"`
	DisableThemeSwitch        bool   `koanf:"disable_theme_switch"`
	PersistTheme              *bool  `koanf:"persist_theme"`
	DefaultMode               string `koanf:"default_mode"`
	Breakpoint                int    `koanf:"breakpoint"`
}

// NavEntry is one configured navigation item. Only one level of nesting is
// supported; deeper Items lists are rejected.
type NavEntry struct {
	Label  string     `koanf:"label"`
	Target string     `koanf:"target"`
	Items  []NavEntry `koanf:"items"`
}

// LoadSite reads the site config file (when path is non-empty and present)
// and overlays DOCNAV_* values from the process environment.
func LoadSite(path string) (Site, error) {
	k := koanf.New(".")

	var site Site
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Site{}, fmt.Errorf("reading site config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Site{}, fmt.Errorf("accessing site config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("DOCNAV_", ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.TrimPrefix(key, "DOCNAV_")), value
	}), nil); err != nil {
		return Site{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &site); err != nil {
		return Site{}, fmt.Errorf("unmarshalling site config: %w", err)
	}

	for _, entry := range site.Nav {
		for _, child := range entry.Items {
			if len(child.Items) > 0 {
				return Site{}, fmt.Errorf("nav item %q: only one level of children is supported", entry.Label)
			}
		}
	}
	if site.DefaultMode != "" && site.DefaultMode != "light" && site.DefaultMode != "dark" {
		return Site{}, fmt.Errorf("default_mode must be light or dark (got %q)", site.DefaultMode)
	}
	if site.Breakpoint < 0 {
		return Site{}, fmt.Errorf("breakpoint must be >= 0 (got %d)", site.Breakpoint)
	}

	return site, nil
}

// NavItems converts the configured entries to navigation items. Returns nil
// when the file supplies no tree, letting the docs scan take over.
func (s Site) NavItems() []nav.Item {
	if len(s.Nav) == 0 {
		return nil
	}
	items := make([]nav.Item, 0, len(s.Nav))
	for _, entry := range s.Nav {
		items = append(items, entry.toItem(""))
	}
	return items
}

func (e NavEntry) toItem(parent string) nav.Item {
	id := e.Target
	if id == "" {
		id = slug(e.Label)
	}
	if parent != "" {
		id = parent + ":" + id
	}
	item := nav.Item{ID: id, Label: e.Label, Target: e.Target}
	for _, child := range e.Items {
		item.Children = append(item.Children, child.toItem(id))
	}
	return item
}

func slug(label string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "-"))
}

func (s Site) HideOnScrollOrDefault() bool {
	if s.HideOnScroll == nil {
		return true
	}
	return *s.HideOnScroll
}

func (s Site) RespectSystemOrDefault() bool {
	if s.RespectPrefersColorScheme == nil {
		return true
	}
	return *s.RespectPrefersColorScheme
}

func (s Site) PersistThemeOrDefault() bool {
	if s.PersistTheme == nil {
		return true
	}
	return *s.PersistTheme
}

func (s Site) DefaultModeOrDefault() string {
	if s.DefaultMode == "" {
		return "light"
	}
	return s.DefaultMode
}

func (s Site) BreakpointOrDefault() int {
	if s.Breakpoint == 0 {
		return defaultBreakpoint
	}
	return s.Breakpoint
}
