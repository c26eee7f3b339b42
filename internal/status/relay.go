package status

import (
	"log/slog"
	"sync"
)

// Relay receives status lines in order. Report must not block for long and
// must be safe to call from the goroutine running the download.
type Relay interface {
	Report(line string)
}

// Func adapts a plain function to the Relay interface
type Func func(line string)

// Report calls f(line)
func (f Func) Report(line string) {
	if f != nil {
		f(line)
	}
}

// Discard is a relay that drops every line
var Discard Relay = Func(nil)

// Recorder is a thread-safe in-memory relay
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends line to the recorded lines
func (r *Recorder) Report(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

// Lines returns a copy of the recorded lines in arrival order
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of recorded lines
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Multi fans every line out to all relays, in the order they were given.
// Calls are serialized so that each sink observes the same line order.
type Multi struct {
	mu     sync.Mutex
	relays []Relay
}

// NewMulti creates a fan-out relay. Nil relays are skipped.
func NewMulti(relays ...Relay) *Multi {
	m := &Multi{}
	for _, r := range relays {
		if r != nil {
			m.relays = append(m.relays, r)
		}
	}
	return m
}

// Report forwards line to every relay
func (m *Multi) Report(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.relays {
		r.Report(line)
	}
}

// LogRelay mirrors status lines into a structured logger
type LogRelay struct {
	logger *slog.Logger
}

// NewLogRelay creates a relay that logs each line at info level.
// A nil logger falls back to slog.Default().
func NewLogRelay(logger *slog.Logger) *LogRelay {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRelay{logger: logger}
}

// Report logs the line
func (l *LogRelay) Report(line string) {
	l.logger.Info("status", slog.String("line", line))
}
