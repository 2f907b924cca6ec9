package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_Local(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(EnvLocal, &buf)

	log.Debug("visible", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "msg=visible") || !strings.Contains(out, "key=value") {
		t.Errorf("Expected text debug output, got '%s'", out)
	}
}

func TestNew_Prod(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(EnvProd, &buf)

	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug to be filtered in prod, got '%s'", buf.String())
	}

	log.Info("poll created", "poll_id", "abc")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "poll created" || entry["poll_id"] != "abc" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}
