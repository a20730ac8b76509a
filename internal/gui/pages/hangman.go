package pages

import (
	"fmt"
	"strings"

	"games-collection/internal/games"
	"games-collection/internal/gui/components"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const lettersPerRow = 9

type HangmanPage struct {
	game   *games.Hangman
	words  WordSource
	logger logger.Logger

	content       fyne.CanvasObject
	wordDisplay   *widget.Label
	status        *components.StatusLine
	letterButtons map[rune]*widget.Button
	navBar        *components.NavBar
}

func NewHangmanPage(nav Navigator, words WordSource, rng games.Rand, log logger.Logger) *HangmanPage {
	p := &HangmanPage{
		game:          games.NewHangman(rng),
		words:         words,
		logger:        log,
		letterButtons: make(map[rune]*widget.Button, len(games.Alphabet)),
	}

	p.wordDisplay = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	p.status = components.NewStatusLine(fmt.Sprintf("Attempts left: %d", games.HangmanAttempts))
	p.navBar = components.NewNavBar("New Game", p.startGame, backToMenu(nav, log, "Hangman"))

	letters := make([]fyne.CanvasObject, 0, len(games.Alphabet))
	for _, letter := range games.Alphabet {
		l := letter
		button := widget.NewButton(strings.ToUpper(string(l)), func() { p.checkLetter(l) })
		p.letterButtons[l] = button
		letters = append(letters, button)
	}

	p.content = container.NewVBox(
		components.NewTitle("=== Word Guessing (Hangman) ==="),
		p.wordDisplay,
		p.status.GetContainer(),
		container.NewGridWithColumns(lettersPerRow, letters...),
		p.navBar.GetContainer(),
	)

	p.startGame()
	return p
}

func (p *HangmanPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *HangmanPage) startGame() {
	if err := p.game.Start(p.words()); err != nil {
		p.wordDisplay.SetText("")
		p.status.SetError("FATAL ERROR: Could not load word list.")
		p.syncLetters()
		p.logger.Error("Hangman", err, nil)
		return
	}

	p.syncLetters()
	p.wordDisplay.SetText(p.game.Masked())

	p.logger.Info("Hangman", "game started", map[string]interface{}{
		"length": len(p.game.Secret()),
	})
	// A word with no a-z letters is solved before the first guess.
	p.showPhase()
}

func (p *HangmanPage) checkLetter(letter rune) {
	res, err := p.game.Guess(letter)
	p.syncLetters()
	if err != nil {
		p.logger.Debug("Hangman", "letter rejected", map[string]interface{}{
			"letter": string(letter),
			"error":  err.Error(),
		})
		return
	}
	if res.Repeated {
		return
	}

	p.wordDisplay.SetText(res.Masked)
	p.showPhase()
}

func (p *HangmanPage) showPhase() {
	switch p.game.Phase() {
	case games.PhaseWon:
		p.status.SetSuccess("CONGRATULATIONS! You guessed the word!")
		p.logger.Info("Hangman", "game won", map[string]interface{}{"attempts_left": p.game.AttemptsLeft()})
	case games.PhaseLost:
		p.status.SetError(fmt.Sprintf("GAME OVER! The word was: %s", p.game.Secret()))
		p.logger.Info("Hangman", "game lost", nil)
	default:
		p.status.SetStatus(fmt.Sprintf("Attempts left: %d", p.game.AttemptsLeft()))
	}
}

// syncLetters mirrors the game's per-letter enabled flags onto the buttons.
func (p *HangmanPage) syncLetters() {
	for letter, button := range p.letterButtons {
		components.SetEnabled(p.game.LetterEnabled(letter), button)
	}
}
