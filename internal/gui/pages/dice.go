package pages

import (
	"errors"
	"fmt"

	"games-collection/internal/games"
	"games-collection/internal/gui/components"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	highOption = "High (4-6)"
	lowOption  = "Low (1-3)"
)

type DiceBettingPage struct {
	game   *games.Dice
	logger logger.Logger

	content     fyne.CanvasObject
	moneyLabel  *widget.Label
	gameLog     *components.GameLog
	betEntry    *widget.Entry
	sideChoice  *widget.RadioGroup
	placeButton *widget.Button
	navBar      *components.NavBar
}

func NewDiceBettingPage(nav Navigator, rng games.Rand, log logger.Logger) *DiceBettingPage {
	p := &DiceBettingPage{
		game:   games.NewDice(rng),
		logger: log,
	}

	p.moneyLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	p.gameLog = components.NewGameLog()
	p.betEntry = widget.NewEntry()
	p.betEntry.OnSubmitted = func(string) { p.placeBet() }
	p.sideChoice = widget.NewRadioGroup([]string{highOption, lowOption}, nil)
	p.sideChoice.Horizontal = true
	p.sideChoice.Required = true
	p.sideChoice.SetSelected(highOption)
	p.placeButton = widget.NewButton("Place Bet!", p.placeBet)
	p.navBar = components.NewNavBar("New Game (Reset Money)", p.resetGame, backToMenu(nav, log, "DiceBetting"))

	p.content = container.NewVBox(
		components.NewTitle("=== Dice Rolling Game ==="),
		p.moneyLabel,
		p.gameLog.GetContainer(),
		container.NewBorder(nil, nil, widget.NewLabel("Bet Amount:"), p.sideChoice, p.betEntry),
		p.placeButton,
		p.navBar.GetContainer(),
	)

	p.updateMoney()
	p.gameLog.Append("Welcome! Bet on High (4-6) or Low (1-3)!")
	return p
}

func (p *DiceBettingPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *DiceBettingPage) side() games.Side {
	if p.sideChoice.Selected == lowOption {
		return games.Low
	}
	return games.High
}

func (p *DiceBettingPage) placeBet() {
	input := p.betEntry.Text
	p.betEntry.SetText("")

	amount, err := games.ParseAmount(input)
	if err == nil {
		var roll games.Roll
		roll, err = p.game.PlaceBet(amount, p.side())
		if err == nil {
			p.showRoll(roll)
			return
		}
	}

	switch {
	case errors.Is(err, games.ErrNotANumber):
		p.gameLog.Append("Please enter a valid numerical bet!")
	case errors.Is(err, games.ErrNonPositiveBet):
		p.gameLog.Append("Bet must be a positive number!")
	case errors.Is(err, games.ErrInsufficientFunds):
		p.gameLog.Append(fmt.Sprintf("You only have $%d! Bet less than that.", p.game.Money()))
	}
	p.logger.Debug("DiceBetting", "bet rejected", map[string]interface{}{
		"input": input,
		"error": err.Error(),
	})
}

func (p *DiceBettingPage) showRoll(roll games.Roll) {
	p.gameLog.Append("--- Round ---")
	p.gameLog.Append(fmt.Sprintf("Bet: $%d on %s", roll.Bet, roll.Side))
	p.gameLog.Append(fmt.Sprintf("Dice rolled: %d", roll.Face))
	if roll.Won {
		p.gameLog.Append(fmt.Sprintf("YOU WIN! You gained $%d.", roll.Bet))
	} else {
		p.gameLog.Append(fmt.Sprintf("You lose $%d.", roll.Bet))
	}
	p.updateMoney()

	if roll.Phase == games.PhaseLost {
		p.gameLog.Append("GAME OVER! You're out of money. Start a New Game.")
		components.SetEnabled(false, p.placeButton, p.betEntry)
		p.logger.Info("DiceBetting", "out of money", nil)
	}
}

func (p *DiceBettingPage) resetGame() {
	p.game.Reset()
	p.updateMoney()

	p.gameLog.Clear()
	p.gameLog.Append("New game started. Bet wisely!")
	components.SetEnabled(true, p.placeButton, p.betEntry)

	p.logger.Info("DiceBetting", "game started", map[string]interface{}{"money": p.game.Money()})
}

func (p *DiceBettingPage) updateMoney() {
	p.moneyLabel.SetText(fmt.Sprintf("Current Money: $%d", p.game.Money()))
}
