package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// StatusLog is the desktop status relay: an append-only list that scrolls to
// the newest line. Report may be called from any goroutine.
type StatusLog struct {
	lines binding.StringList
	list  *widget.List
}

// NewStatusLog creates an empty status log
func NewStatusLog() *StatusLog {
	lines := binding.NewStringList()

	list := widget.NewListWithData(lines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	return &StatusLog{lines: lines, list: list}
}

// Report appends line on the UI goroutine. fyne.Do runs callbacks in
// submission order so lines keep their arrival order.
func (s *StatusLog) Report(line string) {
	fyne.Do(func() {
		s.lines.Append(line)
		s.list.ScrollToBottom()
	})
}

// Lines returns a snapshot of the rendered lines
func (s *StatusLog) Lines() []string {
	lines, err := s.lines.Get()
	if err != nil {
		return nil
	}
	return lines
}

// Widget returns the list to place in a layout
func (s *StatusLog) Widget() fyne.CanvasObject {
	return s.list
}
