package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// StatusLine is a single centred label whose colour follows the game outcome.
type StatusLine struct {
	label *widget.Label
}

func NewStatusLine(text string) *StatusLine {
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter
	label.Wrapping = fyne.TextWrapWord

	return &StatusLine{label: label}
}

func (sl *StatusLine) GetContainer() fyne.CanvasObject {
	return sl.label
}

func (sl *StatusLine) SetStatus(status string) {
	sl.set(status, widget.MediumImportance)
}

func (sl *StatusLine) SetSuccess(status string) {
	sl.set(status, widget.SuccessImportance)
}

func (sl *StatusLine) SetError(status string) {
	sl.set(status, widget.DangerImportance)
}

func (sl *StatusLine) Text() string {
	return sl.label.Text
}

func (sl *StatusLine) Importance() widget.Importance {
	return sl.label.Importance
}

func (sl *StatusLine) set(status string, importance widget.Importance) {
	sl.label.Importance = importance
	sl.label.SetText(status)
}
