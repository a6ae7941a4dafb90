package logger

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("Output = %q, want stderr", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFields(t *testing.T) {
	m := Fields("state", "recording", "duration_ms", 250)
	if m["state"] != "recording" {
		t.Errorf("state = %v, want recording", m["state"])
	}
	if m["duration_ms"] != 250 {
		t.Errorf("duration_ms = %v, want 250", m["duration_ms"])
	}

	// Odd trailing value is dropped, non-string keys skipped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("len = %d, want 1", len(m))
	}
}

func TestLogger_ComponentField(t *testing.T) {
	var buf logCapture
	zl := zerolog.New(&buf)
	l := &Logger{logger: zl.With().Str(FieldComponent, "recorder").Logger(), component: "recorder"}

	l.Info("transition", Fields("state", "idle"))

	var entry map[string]any
	if err := json.Unmarshal(buf.last, &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["component"] != "recorder" {
		t.Errorf("component = %v, want recorder", entry["component"])
	}
	if entry["state"] != "idle" {
		t.Errorf("state = %v, want idle", entry["state"])
	}
}

func TestRegistry_GetFallsBackToComponentLogger(t *testing.T) {
	l := Get("capture")
	if l == nil {
		t.Fatal("Get returned nil")
	}
	if l.component != "capture" {
		t.Errorf("component = %q, want capture", l.component)
	}

	named := NewDefault("custom")
	Register("custom", named)
	if Get("custom") != named {
		t.Error("expected registered logger back")
	}
}

type logCapture struct {
	last []byte
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.last = append([]byte(nil), p...)
	return len(p), nil
}
