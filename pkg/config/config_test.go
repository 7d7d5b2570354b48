package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mazeerrors "github.com/matzehuels/mazegen/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/custom-config", appName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.toml", `
height = 12
width = 40
strategy = "dfs"
delay = "150ms"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Height != 12 || cfg.Width != 40 || cfg.Strategy != "dfs" {
		t.Errorf("Load() = %+v", cfg)
	}
	if time.Duration(cfg.Delay) != 150*time.Millisecond {
		t.Errorf("Delay = %v, want 150ms", time.Duration(cfg.Delay))
	}
	// Unset keys keep their defaults.
	if cfg.Format != Default().Format || cfg.Addr != DefaultAddr {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "height = ", "read config"},
		{"unknown key", "colour = \"red\"\n", "unknown config keys"},
		{"bad duration", "delay = \"soon\"\n", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.toml", tt.content))
			if !mazeerrors.Is(err, mazeerrors.ErrCodeInvalidInput) {
				t.Fatalf("Load() error = %v, want INVALID_INPUT", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   mazeerrors.Code
	}{
		{"dimensions", func(c *Config) { c.Height = 0 }, mazeerrors.ErrCodeInvalidDimensions},
		{"strategy", func(c *Config) { c.Strategy = "prim" }, mazeerrors.ErrCodeInvalidStrategy},
		{"format", func(c *Config) { c.Format = "gif" }, mazeerrors.ErrCodeInvalidFormat},
		{"negative", func(c *Config) { c.MinCycle = -1 }, mazeerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !mazeerrors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	data, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `delay = "20ms"`) {
		t.Errorf("Encode() = %s, want string delay", data)
	}
	got, err := Load(writeFile(t, "config.toml", string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed = 5
	opts := cfg.Options()
	if opts.Height != cfg.Height || opts.Seed != 5 || opts.Formats[0] != cfg.Format {
		t.Errorf("Options() = %+v", opts)
	}
}
