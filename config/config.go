package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/annotext/annotated"
)

// Config is the complete set of annotext settings.
type Config struct {
	Editor Editor `toml:"editor"`
	Search Search `toml:"search"`
	Log    Log    `toml:"log"`
	// Theme overrides rendering colors per annotation kind, keyed by the
	// kind's snake_case name.
	Theme map[string]Color `toml:"theme"`
}

type Editor struct {
	ShowLineNumbers bool `toml:"show_line_numbers"`
	ScrollMargin    int  `toml:"scroll_margin"`
}

type Search struct {
	// HighlightAll marks every occurrence of the query, not only the
	// selected one.
	HighlightAll bool `toml:"highlight_all"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File enables logging to the named file.
	File string `toml:"file"`
}

// Color is "#rrggbb" or an ANSI color number; empty keeps the default.
type Color struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel    = "ANNOTEXT_LOG_LEVEL"
	EnvLogFile     = "ANNOTEXT_LOG_FILE"
	EnvLineNumbers = "ANNOTEXT_LINE_NUMBERS"
)

var (
	hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: Editor{ShowLineNumbers: true},
		Search: Search{HighlightAll: true},
		Log:    Log{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/annotext/config.toml or its
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "annotext", "config.toml"), nil
}

// Load reads and validates the config file at path. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes and validates TOML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	return parse("<data>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var se *toml.StrictMissingError
		if errors.As(err, &se) && len(se.Errors) > 0 {
			keys := make([]string, 0, len(se.Errors))
			for i := range se.Errors {
				keys = append(keys, strings.Join(se.Errors[i].Key(), "."))
			}
			pe.Message = "unknown keys: " + strings.Join(keys, ", ")
			pe.Line, pe.Column = se.Errors[0].Position()
		}
		return nil, pe
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables read through
// lookup, typically os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.Log.File = v
	}
	if v, ok := lookup(EnvLineNumbers); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLineNumbers, v)
		}
		c.Editor.ShowLineNumbers = b
	}
	return c.Validate()
}

// Validate reports every setting outside its domain.
func (c *Config) Validate() error {
	var errs []error
	if !contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("%w: log.level %q (want one of %s)", ErrInvalidValue, c.Log.Level, strings.Join(logLevels, ", ")))
	}
	if c.Editor.ScrollMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: editor.scroll_margin %d", ErrInvalidValue, c.Editor.ScrollMargin))
	}
	for name, col := range c.Theme {
		if _, ok := annotated.ParseKind(name); !ok {
			errs = append(errs, fmt.Errorf("%w: theme.%s is not an annotation kind", ErrInvalidValue, name))
			continue
		}
		for field, v := range map[string]string{"foreground": col.Foreground, "background": col.Background} {
			if v != "" && !validColor(v) {
				errs = append(errs, fmt.Errorf("%w: theme.%s.%s %q", ErrInvalidValue, name, field, v))
			}
		}
	}
	return errors.Join(errs...)
}

// ThemeColors returns the theme keyed by annotation kind. Call Validate
// first; unknown names are skipped.
func (c *Config) ThemeColors() map[annotated.Kind]Color {
	out := make(map[annotated.Kind]Color, len(c.Theme))
	for name, col := range c.Theme {
		if k, ok := annotated.ParseKind(name); ok {
			out[k] = col
		}
	}
	return out
}

func validColor(v string) bool {
	if hexColorRE.MatchString(v) {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 255
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
