package calculation

import (
	"bytes"
	"strings"
	"testing"
)

func TestStderrLoggerSuppressesDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := StderrLogger{W: &buf}
	l.Debugf("hidden %d", 1)
	l.Infof("visible %d", 2)
	l.Warnf("careful")
	l.Errorf("boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be suppressed: %q", out)
	}
	for _, want := range []string{"[INFO] visible 2", "[WARN] careful", "[ERROR] boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output %q", want, out)
		}
	}
}

func TestStderrLoggerDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := StderrLogger{Debug: true, W: &buf}
	l.Debugf("trace detail")
	if !strings.Contains(buf.String(), "[DEBUG] trace detail") {
		t.Fatalf("missing debug line: %q", buf.String())
	}
}
