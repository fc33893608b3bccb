package progress

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogTracker_LogsEveryN(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tracker := &LogTracker{Logger: logger, Every: 2}
	tracker.SetMessage("scanning /tmp")
	for i := 1; i <= 5; i++ {
		tracker.SetDone(i)
	}
	tracker.MarkFinished()

	out := buf.String()
	// Progress at 2 and 4, plus the finished line.
	if got := strings.Count(out, "scanning /tmp"); got != 3 {
		t.Errorf("expected 3 progress lines, got %d: %s", got, out)
	}
	if !strings.Contains(out, "finished=true") {
		t.Errorf("expected finished marker in output: %s", out)
	}
}

func TestNoopTrackerDoesNothing(t *testing.T) {
	var tracker Tracker = NoopTracker{}
	tracker.SetMessage("msg")
	tracker.SetDone(1)
	tracker.SetError(nil)
	tracker.MarkFinished()
}
