package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("scanner", false, &buf)

	logger.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "scanner" {
		t.Errorf("component = %v, want scanner", entry["component"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("scanner", false, &buf)

	logger.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Error("debug output must be suppressed at info level")
	}

	logger = newLogger("scanner", true, &buf)
	logger.Debug().Msg("visible")
	if buf.Len() == 0 {
		t.Error("debug output missing with debug enabled")
	}
}
