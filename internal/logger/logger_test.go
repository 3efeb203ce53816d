package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithOptions_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Env: "production", Out: &buf})

	log.Info("segment assembled", map[string]interface{}{
		"segment": "seg-1",
		"rooms":   3,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}
	if entry["message"] != "segment assembled" {
		t.Errorf("Expected message field, got %v", entry["message"])
	}
	if entry["segment"] != "seg-1" {
		t.Errorf("Expected segment field, got %v", entry["segment"])
	}
}

func TestNewWithOptions_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Env: "production", Level: "warn", Out: &buf})

	log.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	log.Warn("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected warn message to be written")
	}
}

func TestNewWithOptions_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Env: "production", Level: "chatty", Out: &buf})

	if log.GetZerolog().GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level fallback, got %s", log.GetZerolog().GetLevel())
	}
}

func TestNew_DevelopmentMode(t *testing.T) {
	log := New("development")

	if log == nil {
		t.Fatal("Expected logger to be created")
	}
	if log.GetZerolog().GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level in development, got %s", log.GetZerolog().GetLevel())
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()

	// Should not panic and should not write anywhere
	log.Info("nothing", map[string]interface{}{"k": "v"})
	log.Error("nothing", errors.New("x"), nil)
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{zlog: zerolog.New(&buf)}

	log.Error("subsystem lookup failed", errors.New("not found"), map[string]interface{}{
		"id": 42,
	})

	output := buf.String()
	if !strings.Contains(output, "subsystem lookup failed") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "not found") {
		t.Error("Expected log output to contain error message")
	}
	if !strings.Contains(output, "42") {
		t.Error("Expected log output to contain id field")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{zlog: zerolog.New(&buf)}

	child := log.With(map[string]interface{}{
		"component": "pipeline",
	})
	child.Debug("building zone", nil)

	if !strings.Contains(buf.String(), "pipeline") {
		t.Error("Expected log output to contain component field from context")
	}
}

func TestWithVariant(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{zlog: zerolog.New(&buf)}

	log.WithVariant(7, "Segment A").Info("variant ready", nil)

	output := buf.String()
	if !strings.Contains(output, `"variant_id":7`) {
		t.Errorf("Expected variant_id field, got %s", output)
	}
	if !strings.Contains(output, "Segment A") {
		t.Error("Expected variant name in output")
	}
}

func TestNilFields(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{zlog: zerolog.New(&buf)}

	log.Info("message with nil fields", nil)

	if !strings.Contains(buf.String(), "message with nil fields") {
		t.Error("Expected message to be logged even with nil fields")
	}
}
