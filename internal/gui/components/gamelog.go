package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	logWidth  = 520
	logHeight = 150
)

// GameLog is the read-only, auto-scrolling message area shared by the text-entry games.
type GameLog struct {
	scroll *container.Scroll
	label  *widget.Label
	lines  []string
}

func NewGameLog() *GameLog {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(logWidth, logHeight))

	return &GameLog{
		scroll: scroll,
		label:  label,
	}
}

func (gl *GameLog) GetContainer() fyne.CanvasObject {
	return gl.scroll
}

func (gl *GameLog) Append(message string) {
	gl.lines = append(gl.lines, message)
	gl.label.SetText(strings.Join(gl.lines, "\n"))
	gl.scroll.ScrollToBottom()
}

func (gl *GameLog) Clear() {
	gl.lines = nil
	gl.label.SetText("")
	gl.scroll.ScrollToTop()
}

func (gl *GameLog) Lines() []string {
	return append([]string(nil), gl.lines...)
}

// Last returns the most recent message, or "" when the log is empty.
func (gl *GameLog) Last() string {
	if len(gl.lines) == 0 {
		return ""
	}
	return gl.lines[len(gl.lines)-1]
}
