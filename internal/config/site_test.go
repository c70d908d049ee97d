package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write site config: %v", err)
	}
	return path
}

func TestLoadSiteEmptyPath(t *testing.T) {
	site, err := LoadSite("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if site.Title != "" || len(site.Nav) != 0 {
		t.Fatalf("expected zero site, got %#v", site)
	}
}

func TestLoadSiteMissingFileIsNotAnError(t *testing.T) {
	if _, err := LoadSite(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("expected missing file tolerated, got %v", err)
	}
}

func TestLoadSiteParsesOptions(t *testing.T) {
	path := writeSite(t, strings.Join([]string{
		"title: Handbook",
		"hide_on_scroll: false",
		"respect_prefers_color_scheme: false",
		"persist_theme: false",
		"default_mode: dark",
		"breakpoint: 120",
	}, "\n"))

	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if site.Title != "Handbook" {
		t.Fatalf("expected title, got %q", site.Title)
	}
	if site.HideOnScrollOrDefault() || site.RespectSystemOrDefault() || site.PersistThemeOrDefault() {
		t.Fatalf("expected explicit false values honored, got %#v", site)
	}
	if site.DefaultModeOrDefault() != "dark" || site.BreakpointOrDefault() != 120 {
		t.Fatalf("unexpected options %#v", site)
	}
}

func TestLoadSiteDefaults(t *testing.T) {
	site, err := LoadSite(writeSite(t, "title: Handbook\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !site.HideOnScrollOrDefault() || !site.RespectSystemOrDefault() || !site.PersistThemeOrDefault() {
		t.Fatalf("expected opt-out defaults to be enabled, got %#v", site)
	}
	if site.DefaultModeOrDefault() != "light" || site.BreakpointOrDefault() != 80 {
		t.Fatalf("unexpected defaults %#v", site)
	}
}

func TestLoadSiteEnvOverride(t *testing.T) {
	t.Setenv("DOCNAV_TITLE", "From Environment")
	site, err := LoadSite("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if site.Title != "From Environment" {
		t.Fatalf("expected env override, got %q", site.Title)
	}
}

func TestLoadSiteRejectsDeepNesting(t *testing.T) {
	path := writeSite(t, strings.Join([]string{
		"nav:",
		"  - label: Guides",
		"    items:",
		"      - label: Advanced",
		"        items:",
		"          - label: Too Deep",
		"            target: deep.md",
	}, "\n"))
	if _, err := LoadSite(path); err == nil {
		t.Fatalf("expected error for nav nested deeper than one level")
	}
}

func TestLoadSiteRejectsInvalidDefaultMode(t *testing.T) {
	if _, err := LoadSite(writeSite(t, "default_mode: sepia\n")); err == nil {
		t.Fatalf("expected error for invalid default_mode")
	}
}

func TestLoadSiteRejectsMalformedYAML(t *testing.T) {
	if _, err := LoadSite(writeSite(t, "title: [unterminated\n")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestNavItemsBuildsIDs(t *testing.T) {
	site := Site{Nav: []NavEntry{
		{Label: "Getting Started", Target: "intro.md"},
		{Label: "User Guides", Items: []NavEntry{
			{Label: "Install", Target: "guides/install.md"},
			{Label: "Daily Use"},
		}},
	}}
	items := site.NavItems()
	if len(items) != 2 {
		t.Fatalf("expected two items, got %#v", items)
	}
	if items[0].ID != "intro.md" || items[0].Target != "intro.md" {
		t.Fatalf("expected target-derived id, got %#v", items[0])
	}
	group := items[1]
	if group.ID != "user-guides" || !group.HasChildren() {
		t.Fatalf("expected slug id for group, got %#v", group)
	}
	if group.Children[0].ID != "user-guides:guides/install.md" {
		t.Fatalf("unexpected child id %q", group.Children[0].ID)
	}
	if group.Children[1].ID != "user-guides:daily-use" {
		t.Fatalf("unexpected slugged child id %q", group.Children[1].ID)
	}
}

func TestNavItemsEmptyWhenUnset(t *testing.T) {
	if items := (Site{}).NavItems(); items != nil {
		t.Fatalf("expected nil nav for empty config, got %#v", items)
	}
}
