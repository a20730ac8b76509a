package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func NewTitle(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

// NavBar holds the "new game" and "back to menu" buttons every game page carries.
type NavBar struct {
	container     *fyne.Container
	NewGameButton *widget.Button
	BackButton    *widget.Button
}

func NewNavBar(newGameLabel string, onNewGame, onBack func()) *NavBar {
	newGameButton := widget.NewButton(newGameLabel, onNewGame)
	backButton := widget.NewButton("Back to Menu", onBack)

	return &NavBar{
		container:     container.NewBorder(nil, nil, newGameButton, backButton),
		NewGameButton: newGameButton,
		BackButton:    backButton,
	}
}

func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}

// InputRow lays out a caption, an entry and its submit button on one line.
func InputRow(caption string, entry *widget.Entry, submit *widget.Button) *fyne.Container {
	return container.NewBorder(nil, nil, widget.NewLabel(caption), submit, entry)
}

// SetEnabled toggles a set of widgets together.
func SetEnabled(enabled bool, widgets ...fyne.Disableable) {
	for _, w := range widgets {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}
