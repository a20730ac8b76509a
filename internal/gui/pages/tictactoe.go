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

type TicTacToePage struct {
	game   *games.TicTacToe
	logger logger.Logger

	content fyne.CanvasObject
	status  *components.StatusLine
	cells   [games.BoardSize][games.BoardSize]*widget.Button
	navBar  *components.NavBar
}

func NewTicTacToePage(nav Navigator, log logger.Logger) *TicTacToePage {
	p := &TicTacToePage{
		game:   games.NewTicTacToe(),
		logger: log,
	}

	p.status = components.NewStatusLine("")
	p.navBar = components.NewNavBar("New Game", p.resetGame, backToMenu(nav, log, "TicTacToe"))

	grid := make([]fyne.CanvasObject, 0, games.BoardSize*games.BoardSize)
	for r := 0; r < games.BoardSize; r++ {
		for c := 0; c < games.BoardSize; c++ {
			row, col := r, c
			button := widget.NewButton(" ", func() { p.selectCell(row, col) })
			p.cells[r][c] = button
			grid = append(grid, button)
		}
	}

	p.content = container.NewVBox(
		components.NewTitle("=== Tic-Tac-Toe (2-Player) ==="),
		p.status.GetContainer(),
		container.NewCenter(container.NewGridWrap(fyne.NewSize(240, 240),
			container.NewGridWithColumns(games.BoardSize, grid...))),
		p.navBar.GetContainer(),
	)

	p.resetGame()
	return p
}

func (p *TicTacToePage) Content() fyne.CanvasObject {
	return p.content
}

func (p *TicTacToePage) selectCell(row, col int) {
	move, ok := p.game.Select(row, col)
	if !ok {
		return
	}

	cell := p.cells[row][col]
	cell.SetText(move.Mark.String())
	cell.Disable()

	switch move.Phase {
	case games.PhaseWon:
		p.status.SetSuccess(fmt.Sprintf("Player %s wins!", move.Winner))
		p.disableEmptyCells()
		p.logger.Info("TicTacToe", "game won", map[string]interface{}{"winner": move.Winner.String()})
	case games.PhaseDraw:
		p.status.SetStatus("It's a tie!")
		p.logger.Info("TicTacToe", "game tied", nil)
	default:
		p.status.SetStatus(fmt.Sprintf("Player %s's turn", move.Next))
	}
}

func (p *TicTacToePage) disableEmptyCells() {
	for r := range p.cells {
		for c := range p.cells[r] {
			if p.game.Cell(r, c) == games.Empty {
				p.cells[r][c].Disable()
			}
		}
	}
}

func (p *TicTacToePage) resetGame() {
	p.game.Reset()
	for r := range p.cells {
		for c := range p.cells[r] {
			p.cells[r][c].SetText(" ")
			p.cells[r][c].Enable()
		}
	}
	p.status.SetStatus(fmt.Sprintf("Player %s's turn", p.game.Current()))

	p.logger.Debug("TicTacToe", "board reset", nil)
}
