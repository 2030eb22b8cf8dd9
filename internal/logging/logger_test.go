package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})
	log.Debug("dispatch", "command", "calc")
	log.Info("info")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
	log.Warn("careful")
	if !strings.Contains(buf.String(), "careful") {
		t.Fatalf("warning missing: %q", buf.String())
	}
}

func TestNew_VerboseNonTerminalIsJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Verbose: true}).Debug("dispatch", "command", "calc")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "dispatch" || rec["command"] != "calc" || rec["level"] != "DEBUG" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_ForcedText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Verbose: true, Format: "text"}).Debug("evaluated", "value", 6)
	if !strings.Contains(buf.String(), "msg=evaluated value=6") {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}
