package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerTo_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "warn")

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be suppressed, got: %s", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("warning missing from output: %s", out)
	}
}

func TestNewLoggerTo_UnknownLevelDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "chatty")

	logger.Info("hidden info")
	if buf.Len() != 0 {
		t.Errorf("expected no output at default level, got: %s", buf.String())
	}
}

func TestWithRoot(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "debug").WithRoot("/var/log")

	logger.Warn("something happened")
	if !strings.Contains(buf.String(), "root=/var/log") {
		t.Errorf("expected root attribute in output: %s", buf.String())
	}
}
