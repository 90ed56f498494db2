package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"strings"
	"testing"
)

func TestZerologAdapterStructuredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")

	logger.Info("operation done",
		String("op", "factorial"),
		Int("digits", 199),
		Uint64("operand", 120),
		Float64("seconds", 0.25),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "engine" {
		t.Errorf("component = %v, want engine", entry["component"])
	}
	if entry["op"] != "factorial" {
		t.Errorf("op = %v, want factorial", entry["op"])
	}
	if entry["digits"] != float64(199) {
		t.Errorf("digits = %v, want 199", entry["digits"])
	}
	if entry["message"] != "operation done" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "server")

	logger.Error("request failed", errors.New("boom"), String("path", "/compute"))

	out := buf.String()
	if !strings.Contains(out, "boom") || !strings.Contains(out, "/compute") {
		t.Errorf("error log %q missing detail", out)
	}
}

func TestZerologAdapterPrintf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "cli")

	logger.Printf("listening on %s", ":8080")
	if !strings.Contains(buf.String(), "listening on :8080") {
		t.Errorf("Printf output %q", buf.String())
	}
}

func TestErrField(t *testing.T) {
	t.Parallel()

	f := Err(errors.New("wrapped"))
	if f.Key != "error" {
		t.Errorf("Err field key = %q, want error", f.Key)
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))

	logger.Info("starting")
	logger.Error("failed", errors.New("cause"))
	logger.Debug("detail", Int("n", 1))
	logger.Printf("count=%d", 3)

	out := buf.String()
	for _, want := range []string{"[INFO] starting", "[ERROR] failed: cause", "[DEBUG]", "count=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
