package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"none":    LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("low level lines leaked: %q", out)
	}
	if !strings.Contains(out, "WARN: shown 3") || !strings.Contains(out, "ERROR: shown 4") {
		t.Fatalf("missing lines: %q", out)
	}
}

func TestTaggedLoggerSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(&buf, LevelError)
	v := root.With("VIEWER")
	v.Infof("before")
	root.SetLevel(LevelDebug)
	v.Infof("after")
	out := buf.String()
	if strings.Contains(out, "before") {
		t.Fatalf("tagged logger ignored level: %q", out)
	}
	if !strings.Contains(out, "INFO: [VIEWER] after") {
		t.Fatalf("tag missing: %q", out)
	}
	if v.Level() != LevelDebug {
		t.Fatalf("level=%v want DEBUG", v.Level())
	}
}
