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

type HigherOrLowerPage struct {
	game   *games.HigherLower
	logger logger.Logger

	content     fyne.CanvasObject
	gameLog     *components.GameLog
	status      *components.StatusLine
	guessEntry  *widget.Entry
	guessButton *widget.Button
	navBar      *components.NavBar
}

func NewHigherOrLowerPage(nav Navigator, rng games.Rand, log logger.Logger) *HigherOrLowerPage {
	p := &HigherOrLowerPage{
		game:   games.NewHigherLower(rng),
		logger: log,
	}

	p.gameLog = components.NewGameLog()
	p.status = components.NewStatusLine("Attempts: 0")
	p.guessEntry = widget.NewEntry()
	p.guessEntry.OnSubmitted = func(string) { p.checkGuess() }
	p.guessButton = widget.NewButton("Guess!", p.checkGuess)
	p.navBar = components.NewNavBar("New Game", p.startGame, backToMenu(nav, log, "HigherOrLower"))

	caption := fmt.Sprintf("Your Guess (%d-%d):", games.HigherLowerMin, games.HigherLowerMax)
	p.content = container.NewVBox(
		components.NewTitle("=== Higher or Lower (1-100) ==="),
		p.gameLog.GetContainer(),
		p.status.GetContainer(),
		components.InputRow(caption, p.guessEntry, p.guessButton),
		p.navBar.GetContainer(),
	)

	p.startGame()
	return p
}

func (p *HigherOrLowerPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *HigherOrLowerPage) startGame() {
	p.game.Start()

	p.gameLog.Clear()
	p.status.SetStatus("Attempts: 0")
	p.gameLog.Append(fmt.Sprintf("New game started! Guess the number between %d and %d!",
		games.HigherLowerMin, games.HigherLowerMax))

	p.guessEntry.SetText("")
	components.SetEnabled(true, p.guessEntry, p.guessButton)

	p.logger.Info("HigherOrLower", "game started", nil)
}

func (p *HigherOrLowerPage) checkGuess() {
	input := p.guessEntry.Text
	p.guessEntry.SetText("")

	res, err := p.game.Guess(input)
	if err != nil {
		if p.game.Phase() == games.PhasePlaying {
			p.gameLog.Append(numberInputMessage(err, games.HigherLowerMin, games.HigherLowerMax))
		}
		p.logger.Debug("HigherOrLower", "guess rejected", map[string]interface{}{
			"input": input,
			"error": err.Error(),
		})
		return
	}

	p.status.SetStatus(fmt.Sprintf("Attempts: %d", res.Attempts))

	if res.Phase == games.PhaseWon {
		p.gameLog.Append(fmt.Sprintf("Correct! You guessed it (%d) in %d attempts!", res.Guess, res.Attempts))
		components.SetEnabled(false, p.guessEntry, p.guessButton)
		p.logger.Info("HigherOrLower", "game won", map[string]interface{}{
			"attempts": res.Attempts,
		})
		return
	}

	p.gameLog.Append(fmt.Sprintf("Your guess: %d. %s", res.Guess, res.Hint))
}
