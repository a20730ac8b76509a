package pages

import (
	"fmt"

	"games-collection/internal/games"
	"games-collection/internal/gui/components"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type NumberGuessingPage struct {
	game   *games.NumberGuess
	logger logger.Logger

	content     fyne.CanvasObject
	gameLog     *components.GameLog
	guessEntry  *widget.Entry
	guessButton *widget.Button
	status      *components.StatusLine
	navBar      *components.NavBar
}

func NewNumberGuessingPage(nav Navigator, rng games.Rand, log logger.Logger) *NumberGuessingPage {
	p := &NumberGuessingPage{
		game:   games.NewNumberGuess(rng),
		logger: log,
	}

	p.gameLog = components.NewGameLog()
	p.guessEntry = widget.NewEntry()
	p.guessEntry.OnSubmitted = func(string) { p.checkGuess() }
	p.guessButton = widget.NewButton("Guess!", p.checkGuess)
	p.status = components.NewStatusLine("")
	p.navBar = components.NewNavBar("New Game", p.startGame, backToMenu(nav, log, "NumberGuessing"))

	caption := fmt.Sprintf("Your Guess (%d-%d):", games.NumberGuessMin, games.NumberGuessMax)
	p.content = container.NewVBox(
		components.NewTitle("=== Number Guessing Game ==="),
		p.gameLog.GetContainer(),
		components.InputRow(caption, p.guessEntry, p.guessButton),
		p.status.GetContainer(),
		p.navBar.GetContainer(),
	)

	p.startGame()
	return p
}

func (p *NumberGuessingPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *NumberGuessingPage) startGame() {
	p.game.Start()

	p.gameLog.Clear()
	p.status.SetStatus(fmt.Sprintf("Attempts left: %d", p.game.AttemptsLeft()))
	p.gameLog.Append(fmt.Sprintf("New game started! Guess the number between %d and %d!",
		games.NumberGuessMin, games.NumberGuessMax))

	p.guessEntry.SetText("")
	components.SetEnabled(true, p.guessEntry, p.guessButton)

	p.logger.Info("NumberGuessing", "game started", nil)
}

func (p *NumberGuessingPage) checkGuess() {
	input := p.guessEntry.Text
	p.guessEntry.SetText("")

	res, err := p.game.Guess(input)
	if err != nil {
		if p.game.Phase() == games.PhasePlaying {
			p.gameLog.Append(numberInputMessage(err, games.NumberGuessMin, games.NumberGuessMax))
		}
		p.logger.Debug("NumberGuessing", "guess rejected", map[string]interface{}{
			"input": input,
			"error": err.Error(),
		})
		return
	}

	switch {
	case res.Phase == games.PhaseWon:
		p.gameLog.Append(fmt.Sprintf("Congrats! You guessed the correct number: %d!", p.game.Target()))
		p.endGame(true)
	case res.Phase == games.PhaseLost:
		p.gameLog.Append(fmt.Sprintf("Wrong guess! It's %s", res.Hint))
		p.gameLog.Append(fmt.Sprintf("Game Over! The number was %d.", p.game.Target()))
		p.endGame(false)
	default:
		p.gameLog.Append(fmt.Sprintf("Wrong guess! It's %s", res.Hint))
		p.status.SetStatus(fmt.Sprintf("Attempts left: %d", res.AttemptsLeft))
	}
}

func (p *NumberGuessingPage) endGame(won bool) {
	components.SetEnabled(false, p.guessEntry, p.guessButton)
	p.status.SetStatus("Game Ended. Start a New Game.")

	p.logger.Info("NumberGuessing", "game ended", map[string]interface{}{
		"won":    won,
		"target": p.game.Target(),
	})
}
