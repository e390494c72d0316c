package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileLogger(&buf, true)
	logger.Infof("page", "rendered %s", "a.png")
	logger.Warnf("page", "truncated %d lines", 2)
	logger.Errorf("app", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	wants := []string{" [INFO] page: rendered a.png", " [WARN] page: truncated 2 lines", " [ERROR] app: boom"}
	for i, want := range wants {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestFileLoggerQuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileLogger(&buf, false)
	logger.Infof("app", "hidden")
	logger.Warnf("app", "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q", buf.String())
	}
}
