package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	mazeerrors "github.com/matzehuels/mazegen/pkg/errors"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "MAZEGEN_"

// LoadEnv applies MAZEGEN_* overrides to cfg. Variables are read from
// envFile (typically ".env"; empty skips it) and then from the process
// environment, which wins on conflicts. The process environment is not
// modified.
func LoadEnv(cfg *Config, envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return mazeerrors.Wrap(mazeerrors.ErrCodeInvalidInput, err, "read %s", envFile)
		default:
			vars = fileVars
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := vars[EnvPrefix+key]
		return v, ok
	}

	var err error
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok && err == nil {
			*dst, err = parse(key, v, strconv.Atoi)
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	setInt("HEIGHT", &cfg.Height)
	setInt("WIDTH", &cfg.Width)
	setInt("MIN_CYCLE", &cfg.MinCycle)
	setString("STRATEGY", &cfg.Strategy)
	setString("FORMAT", &cfg.Format)
	setString("ADDR", &cfg.Addr)
	if v, ok := lookup("SEED"); ok && err == nil {
		cfg.Seed, err = parse("SEED", v, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) })
	}
	if v, ok := lookup("CELL_SIZE"); ok && err == nil {
		cfg.CellSize, err = parse("CELL_SIZE", v, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	}
	if v, ok := lookup("DELAY"); ok && err == nil {
		var d time.Duration
		d, err = parse("DELAY", v, time.ParseDuration)
		cfg.Delay = Duration(d)
	}
	return err
}

func parse[T any](key, value string, fn func(string) (T, error)) (T, error) {
	v, err := fn(value)
	if err != nil {
		return v, mazeerrors.Wrap(mazeerrors.ErrCodeInvalidInput, err, "invalid %s%s: %q", EnvPrefix, key, value)
	}
	return v, nil
}
