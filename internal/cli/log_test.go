package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		debug bool
		info  bool
	}{
		{"info", LogInfo, false, true},
		{"debug", LogDebug, true, true},
		{"warn", LogWarn, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)

			l.Debug("maze structure", "components", 1)
			if got := strings.Contains(buf.String(), "maze structure"); got != tt.debug {
				t.Errorf("debug line logged = %v, want %v", got, tt.debug)
			}
			l.Info("carved maze", "passages", 599)
			if got := strings.Contains(buf.String(), "carved maze"); got != tt.info {
				t.Errorf("info line logged = %v, want %v", got, tt.info)
			}
		})
	}
}

func TestNewLogger_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("listening", "addr", ":8080")
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("line %q does not start with a 15:04:05.00 timestamp", buf.String())
	}
	if !strings.Contains(buf.String(), "addr=:8080") {
		t.Errorf("line %q lost its key/value pair", buf.String())
	}
}

func TestProgress_Done(t *testing.T) {
	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"Wrote %d file(s)", []any{3}, "Wrote 3 file(s) ("},
		{"Carved %dx%d %s maze", []any{20, 30, "braided"}, "Carved 20x30 braided maze ("},
		{"Done", nil, "Done ("},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		newProgress(newLogger(&buf, LogInfo)).done(tt.format, tt.args...)
		out := buf.String()
		if !strings.Contains(out, tt.want) {
			t.Errorf("done(%q, %v) = %q, want it to contain %q", tt.format, tt.args, out, tt.want)
		}
		if !regexp.MustCompile(`\(\d+(\.\d+)?[µnm]?s\)`).MatchString(out) {
			t.Errorf("done(%q) = %q, missing elapsed duration", tt.format, out)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, LogInfo)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext did not return the attached logger")
	}
}

func TestRootCommand_VerboseRaisesLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"-v", "config", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v after -v, want debug", c.Logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "loaded config") {
		t.Errorf("debug config line missing from %q", buf.String())
	}
}
