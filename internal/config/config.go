package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anditko/docnav/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDocsDir    = "DOCNAV_DOCS"
	envSitePath   = "DOCNAV_CONFIG"
	envStateDB    = "DOCNAV_STATE_DB"
	envWidth      = "DOCNAV_WIDTH"
	envHeight     = "DOCNAV_HEIGHT"
	envShowFooter = "DOCNAV_FOOTER"
	envVerbose    = "DOCNAV_VERBOSE"
	envTrace      = "DOCNAV_TRACE"
	envLogFile    = "DOCNAV_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables,
// then overlays the site config file when present.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("docnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	docsDir := fs.String("docs", envOrDefault(env, envDocsDir, "."), "path to the documentation tree")
	sitePath := fs.String("config", envOrDefault(env, envSitePath, ""), "path to the site config file (YAML)")
	stateDB := fs.String("state-db", envOrDefault(env, envStateDB, defaultStateDBPath()), "path to the preference database")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print document titles when opened")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if rest := fs.Args(); len(rest) > 0 {
		docsDir = &rest[0]
	}

	site, err := LoadSite(*sitePath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DocsDir:       *docsDir,
			StateDBPath:   *stateDB,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			Title:         site.Title,
			Nav:           site.NavItems(),
			Breakpoint:    site.BreakpointOrDefault(),
			HideOnScroll:  site.HideOnScrollOrDefault(),
			RespectSystem: site.RespectSystemOrDefault(),
			DisableSwitch: site.DisableThemeSwitch,
			PersistTheme:  site.PersistThemeOrDefault(),
			DefaultMode:   site.DefaultModeOrDefault(),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"docs":    *docsDir,
			"config":  *sitePath,
			"stateDB": *stateDB,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultStateDBPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "docnav.db"
	}
	return base + string(os.PathSeparator) + "docnav" + string(os.PathSeparator) + "state.db"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DocsDir) == "" {
		return fmt.Errorf("docs directory must not be empty")
	}
	if cfg.App.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0 (got %d)", cfg.App.Breakpoint)
	}
	return nil
}
