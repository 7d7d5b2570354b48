package config

import (
	"path/filepath"
	"testing"
	"time"

	mazeerrors "github.com/matzehuels/mazegen/pkg/errors"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("MAZEGEN_HEIGHT", "33")
	t.Setenv("MAZEGEN_STRATEGY", "walk")
	t.Setenv("MAZEGEN_SEED", "1234")
	t.Setenv("MAZEGEN_DELAY", "1s")
	t.Setenv("MAZEGEN_CELL_SIZE", "7.5")

	cfg := Default()
	if err := LoadEnv(&cfg, ""); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.Height != 33 || cfg.Strategy != "walk" || cfg.Seed != 1234 || cfg.CellSize != 7.5 {
		t.Errorf("LoadEnv() = %+v", cfg)
	}
	if time.Duration(cfg.Delay) != time.Second {
		t.Errorf("Delay = %v, want 1s", time.Duration(cfg.Delay))
	}
	if cfg.Width != Default().Width {
		t.Errorf("Width changed without variable: %d", cfg.Width)
	}
}

func TestLoadEnv_DotEnv(t *testing.T) {
	env := writeFile(t, ".env", "MAZEGEN_WIDTH=11\nMAZEGEN_ADDR=:9999\nOTHER=ignored\n")
	t.Setenv("MAZEGEN_ADDR", ":7000")

	cfg := Default()
	if err := LoadEnv(&cfg, env); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.Width != 11 {
		t.Errorf("Width = %d, want 11 from .env", cfg.Width)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want process env to win", cfg.Addr)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	cfg := Default()
	if err := LoadEnv(&cfg, filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadEnv(missing) error = %v", err)
	}
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("MAZEGEN_WIDTH", "wide")
	cfg := Default()
	err := LoadEnv(&cfg, "")
	if !mazeerrors.Is(err, mazeerrors.ErrCodeInvalidInput) {
		t.Errorf("LoadEnv() error = %v, want INVALID_INPUT", err)
	}
}
