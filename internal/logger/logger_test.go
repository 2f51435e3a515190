package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg=test message, got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestTextLogging(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "debug", Format: "text", ServiceName: "test-service"}, &buf)

	Debug("debug message", "detail", "x")

	out := buf.String()
	if !strings.Contains(out, "debug message") {
		t.Errorf("Expected output to contain message, got %q", out)
	}
	if !strings.Contains(out, "service=test-service") {
		t.Errorf("Expected output to contain service attribute, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "error", Format: "text"}, &buf)

	Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected info log to be filtered at error level, got %q", buf.String())
	}

	Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected error log to appear, got %q", buf.String())
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("Expected no request ID on a fresh context")
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("Expected a non-empty request ID")
	}

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("Expected request ID %q, got %q (ok=%v)", id, got, ok)
	}
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		got := Config{Level: tt.level}.LogLevel().String()
		if got != tt.want {
			t.Errorf("LogLevel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
