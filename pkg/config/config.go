// Package config loads mazegen settings from a TOML file and the environment.
//
// Settings are resolved in increasing order of precedence:
//
//  1. Built-in defaults ([Default])
//  2. The config file, $XDG_CONFIG_HOME/mazegen/config.toml by default
//  3. Variables from a .env file in the working directory
//  4. MAZEGEN_* environment variables
//  5. Command-line flags (applied by the CLI)
//
// A missing config file or .env file is not an error.
//
// # File Format
//
//	height = 20
//	width = 30
//	strategy = "braided"
//	min_cycle = 50
//	format = "svg"
//	cell_size = 5.0
//	delay = "20ms"
//	addr = ":8080"
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	mazeerrors "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

const appName = "mazegen"

// Defaults not covered by the pipeline.
const (
	DefaultDelay = 20 * time.Millisecond
	DefaultAddr  = ":8080"
)

// Config holds user-tunable settings.
type Config struct {
	Height   int      `toml:"height"`
	Width    int      `toml:"width"`
	Strategy string   `toml:"strategy"`
	MinCycle int      `toml:"min_cycle"`
	Seed     uint64   `toml:"seed,omitempty"` // 0 = random
	Format   string   `toml:"format"`
	CellSize float64  `toml:"cell_size"`
	Delay    Duration `toml:"delay"` // reveal delay for play
	Addr     string   `toml:"addr"`  // serve listen address
}

// Duration is a time.Duration that reads and writes as a string such as
// "20ms" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Height:   pipeline.DefaultHeight,
		Width:    pipeline.DefaultWidth,
		Strategy: carve.DefaultStrategy,
		MinCycle: carve.DefaultMinCycle,
		Format:   pipeline.DefaultFormat,
		CellSize: pipeline.DefaultCellSize,
		Delay:    Duration(DefaultDelay),
		Addr:     DefaultAddr,
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/mazegen/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. An empty path
// selects DefaultPath. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return cfg, mazeerrors.Wrap(mazeerrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, mazeerrors.New(mazeerrors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks that the settings can drive a generation.
func (c Config) Validate() error {
	if err := mazeerrors.ValidateDimensions(c.Height, c.Width); err != nil {
		return err
	}
	if err := mazeerrors.ValidateStrategy(c.Strategy); err != nil {
		return err
	}
	if err := mazeerrors.ValidateFormat(c.Format, render.Formats()); err != nil {
		return err
	}
	if c.MinCycle < 0 || c.CellSize < 0 || c.Delay < 0 {
		return mazeerrors.New(mazeerrors.ErrCodeInvalidInput, "min_cycle, cell_size and delay must not be negative")
	}
	return nil
}

// Options returns pipeline options carrying the settings.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Height:   c.Height,
		Width:    c.Width,
		Strategy: c.Strategy,
		MinCycle: c.MinCycle,
		Seed:     c.Seed,
		Formats:  []string{c.Format},
		CellSize: c.CellSize,
	}
}

// Encode returns the settings as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
