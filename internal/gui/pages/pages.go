// Package pages builds the main menu and one page per game. Each page owns its
// game state and widgets; pages only talk to each other through the Navigator.
package pages

import (
	"errors"
	"fmt"

	"games-collection/internal/games"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
)

const (
	MainMenu          = "MainMenu"
	NumberGuessing    = "NumberGuessing"
	Hangman           = "Hangman"
	RockPaperScissors = "RockPaperScissors"
	HigherOrLower     = "HigherOrLower"
	DiceBetting       = "DiceBetting"
	Quiz              = "Quiz"
	TicTacToe         = "TicTacToe"
)

// Navigator switches the visible page.
type Navigator interface {
	Show(name string) error
}

type Page interface {
	Content() fyne.CanvasObject
}

type WordSource func() []string

type QuestionSource func() []games.Question

func backToMenu(nav Navigator, log logger.Logger, component string) func() {
	return func() {
		if err := nav.Show(MainMenu); err != nil {
			log.Error(component, err, nil)
		}
	}
}

// numberInputMessage turns a guess validation error into the inline notice shown in the game log.
func numberInputMessage(err error, lo, hi int) string {
	if errors.Is(err, games.ErrOutOfRange) {
		return fmt.Sprintf("Please enter a number between %d and %d!", lo, hi)
	}
	return "Please enter a valid number!"
}
