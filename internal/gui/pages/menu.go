package pages

import (
	"games-collection/internal/gui/components"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type MenuEntry struct {
	Label string
	Page  string
}

// MenuEntries lists the games in the order the menu shows them.
var MenuEntries = []MenuEntry{
	{"1. Number Guessing Game", NumberGuessing},
	{"2. Word Guessing (Hangman)", Hangman},
	{"3. Rock-Paper-Scissors", RockPaperScissors},
	{"4. Higher or Lower (1-100)", HigherOrLower},
	{"5. Dice Rolling (Betting)", DiceBetting},
	{"6. Quiz Game", Quiz},
	{"7. Tic-Tac-Toe (2-Player)", TicTacToe},
}

type MenuPage struct {
	nav    Navigator
	logger logger.Logger

	content     fyne.CanvasObject
	gameButtons []*widget.Button
	exitButton  *widget.Button
}

func NewMenuPage(nav Navigator, onExit func(), log logger.Logger) *MenuPage {
	p := &MenuPage{nav: nav, logger: log}

	items := []fyne.CanvasObject{
		components.NewTitle("=== Text-based Games Collection ==="),
	}
	for _, entry := range MenuEntries {
		page := entry.Page
		button := widget.NewButton(entry.Label, func() { p.open(page) })
		p.gameButtons = append(p.gameButtons, button)
		items = append(items, button)
	}

	p.exitButton = widget.NewButton("Exit", func() {
		p.logger.Info("Menu", "exit requested", nil)
		if onExit != nil {
			onExit()
		}
	})
	items = append(items, widget.NewSeparator(), p.exitButton)

	p.content = container.NewCenter(container.NewVBox(items...))
	return p
}

func (p *MenuPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *MenuPage) open(page string) {
	if err := p.nav.Show(page); err != nil {
		p.logger.Error("Menu", err, map[string]interface{}{"page": page})
		return
	}
	p.logger.Debug("Menu", "page opened", map[string]interface{}{"page": page})
}
