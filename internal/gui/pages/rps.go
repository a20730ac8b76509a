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

type RockPaperScissorsPage struct {
	game   *games.RockPaperScissors
	logger logger.Logger

	content       fyne.CanvasObject
	scoreLabel    *widget.Label
	result        *components.StatusLine
	choiceButtons map[games.Choice]*widget.Button
	navBar        *components.NavBar
}

func NewRockPaperScissorsPage(nav Navigator, rng games.Rand, log logger.Logger) *RockPaperScissorsPage {
	p := &RockPaperScissorsPage{
		game:          games.NewRockPaperScissors(rng),
		logger:        log,
		choiceButtons: make(map[games.Choice]*widget.Button, len(games.Choices)),
	}

	p.scoreLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	p.result = components.NewStatusLine("Choose your weapon!")
	p.navBar = components.NewNavBar("New Game", p.resetGame, backToMenu(nav, log, "RockPaperScissors"))

	buttons := make([]fyne.CanvasObject, 0, len(games.Choices))
	for _, choice := range games.Choices {
		c := choice
		button := widget.NewButton(strings.ToUpper(c.String()), func() { p.playRound(c) })
		p.choiceButtons[c] = button
		buttons = append(buttons, button)
	}

	p.content = container.NewVBox(
		components.NewTitle("=== Rock-Paper-Scissors ==="),
		p.scoreLabel,
		p.result.GetContainer(),
		container.NewGridWithColumns(len(buttons), buttons...),
		p.navBar.GetContainer(),
	)

	p.updateScore()
	return p
}

func (p *RockPaperScissorsPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *RockPaperScissorsPage) playRound(choice games.Choice) {
	round, err := p.game.Play(choice)
	if err != nil {
		p.logger.Debug("RockPaperScissors", "round rejected", map[string]interface{}{"error": err.Error()})
		return
	}

	summary := fmt.Sprintf("You chose: %s | Computer chose: %s",
		strings.ToUpper(round.Player.String()), strings.ToUpper(round.Computer.String()))
	switch round.Outcome {
	case games.Tie:
		p.result.SetStatus(summary + "\nIt's a tie!")
	case games.PlayerWins:
		p.result.SetSuccess(summary + "\nYou win this round!")
	case games.ComputerWins:
		p.result.SetError(summary + "\nComputer wins this round!")
	}
	p.updateScore()

	switch round.Phase {
	case games.PhaseWon:
		p.result.SetSuccess("You won the game! Click 'New Game' to restart.")
	case games.PhaseLost:
		p.result.SetError("Computer won the game! Click 'New Game' to restart.")
	default:
		return
	}

	p.setChoicesEnabled(false)
	p.logger.Info("RockPaperScissors", "game ended", map[string]interface{}{
		"player":   round.PlayerScore,
		"computer": round.ComputerScore,
	})
}

func (p *RockPaperScissorsPage) resetGame() {
	p.game.Reset()
	p.updateScore()
	p.result.SetStatus("Choose your weapon!")
	p.setChoicesEnabled(true)

	p.logger.Info("RockPaperScissors", "game started", nil)
}

func (p *RockPaperScissorsPage) updateScore() {
	player, computer := p.game.Scores()
	p.scoreLabel.SetText(fmt.Sprintf("First to %d wins!\nScore: You %d - %d Computer",
		games.RPSWinningScore, player, computer))
}

func (p *RockPaperScissorsPage) setChoicesEnabled(enabled bool) {
	for _, button := range p.choiceButtons {
		components.SetEnabled(enabled, button)
	}
}
