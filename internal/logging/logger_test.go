package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{" info ", LevelInfo, true},
		{"Warn", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"ERROR", LevelError, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Level: level, Output: &buf, Prefix: "test"}), &buf
}

func TestLoggerLevels(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("messages below the level were written: %q", buf.String())
	}

	logger.Warn("warn %d", 1)
	logger.Error("error %s", "two")
	out := buf.String()
	if !strings.Contains(out, "[WARN] test: warn 1") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] test: error two") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	derived := logger.WithComponent("engine").WithFields(map[string]any{"b": 2, "a": 1})
	derived.Info("edit")

	line := buf.String()
	if !strings.Contains(line, "{a=1, b=2, component=engine}") {
		t.Errorf("fields not rendered in key order: %q", line)
	}

	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("parent logger should not carry derived fields: %q", buf.String())
	}
}

func TestLoggerSharedState(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	child := logger.WithField("k", "v")

	logger.SetLevel(LevelError)
	child.Warn("hidden")
	if buf.Len() != 0 {
		t.Error("derived logger should follow the parent's level")
	}
	if child.Level() != LevelError {
		t.Errorf("Level() = %v, want ERROR", child.Level())
	}

	logger.Disable()
	child.Error("hidden")
	if buf.Len() != 0 || child.Enabled(LevelError) {
		t.Error("disabled logger should write nothing")
	}

	logger.Enable()
	var other bytes.Buffer
	logger.SetOutput(&other)
	child.Error("shown")
	if !strings.Contains(other.String(), "shown") {
		t.Errorf("output = %q", other.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Nop logger should not be enabled")
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	logger, _ := newBufferLogger(LevelInfo)
	prev := Default()
	SetDefault(logger)
	defer SetDefault(prev)

	if Default() != logger {
		t.Error("SetDefault should replace the default logger")
	}
}
