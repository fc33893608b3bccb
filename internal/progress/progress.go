package progress

import "log/slog"

// Tracker receives live updates while a scan is running. Implementations
// must tolerate being called from the goroutine driving the scan.
type Tracker interface {
	SetMessage(msg string)
	SetDone(n int)
	SetError(err error)
	MarkFinished()
}

type NoopTracker struct{}

var _ Tracker = NoopTracker{}

func (n NoopTracker) SetMessage(msg string) {}
func (n NoopTracker) SetDone(n2 int)        {}
func (n NoopTracker) SetError(err error)    {}
func (n NoopTracker) MarkFinished()         {}

// LogTracker reports scan progress through a slog.Logger at debug level,
// logging every Every records (default 1000) to keep the chatter bounded.
type LogTracker struct {
	Logger *slog.Logger
	Every  int

	msg  string
	done int
}

var _ Tracker = (*LogTracker)(nil)

func (t *LogTracker) SetMessage(msg string) {
	t.msg = msg
}

func (t *LogTracker) SetDone(n int) {
	t.done = n
	every := t.Every
	if every <= 0 {
		every = 1000
	}
	if n > 0 && n%every == 0 {
		t.Logger.Debug(t.msg, slog.Int("records", n))
	}
}

func (t *LogTracker) SetError(err error) {
	t.Logger.Debug("scan progress halted", slog.Any("error", err))
}

func (t *LogTracker) MarkFinished() {
	t.Logger.Debug(t.msg, slog.Int("records", t.done), slog.Bool("finished", true))
}
