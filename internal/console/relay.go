// Package console renders status lines and alerts for the command-line runner.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/video-downloader/internal/download"
)

// Relay prints one styled line per status event
type Relay struct {
	mu    sync.Mutex
	out   io.Writer
	theme *Theme
}

// NewRelay creates a relay writing to out
func NewRelay(out io.Writer) *Relay {
	return &Relay{out: out, theme: NewTheme(out)}
}

// Report writes line followed by a newline. Write errors are ignored.
func (r *Relay) Report(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "%s %s\n", r.theme.Dim.Render(r.theme.Bullet), r.styleFor(line).Render(line))
}

func (r *Relay) styleFor(line string) lipgloss.Style {
	switch {
	case line == download.LineCompleted:
		return r.theme.Green
	case line == download.LineFailed:
		return r.theme.Red
	case line == download.LineCancelled:
		return r.theme.Yellow
	case line == download.LineStarting, line == download.LineFinalizing:
		return r.theme.Bold
	case strings.HasPrefix(line, "Speed:"), strings.HasPrefix(line, "ETA:"):
		return r.theme.Dim
	}
	return r.theme.Plain
}

// Alert prints the user-facing message for a failed request
func Alert(w io.Writer, message string) {
	theme := NewTheme(w)
	fmt.Fprintf(w, "%s %s\n", theme.Red.Render(theme.Arrow), theme.Red.Render(message))
}
