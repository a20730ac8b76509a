package pages

import (
	"testing"

	"games-collection/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

// constRand always draws the same value, reduced into range.
type constRand int

func (c constRand) IntN(n int) int { return int(c) % n }

type fakeNav struct {
	shown []string
}

func (f *fakeNav) Show(name string) error {
	f.shown = append(f.shown, name)
	return nil
}

var quiet = logger.NoOpLogger{}

func TestMenuOpensEachGame(t *testing.T) {
	test.NewTempApp(t)
	nav := &fakeNav{}
	exits := 0

	p := NewMenuPage(nav, func() { exits++ }, quiet)
	assert.Len(t, p.gameButtons, len(MenuEntries))

	for i, button := range p.gameButtons {
		assert.Equal(t, MenuEntries[i].Label, button.Text)
		test.Tap(button)
	}
	test.Tap(p.exitButton)

	assert.Equal(t, []string{
		NumberGuessing, Hangman, RockPaperScissors, HigherOrLower, DiceBetting, Quiz, TicTacToe,
	}, nav.shown)
	assert.Equal(t, 1, exits)
}

func TestBackButtonReturnsToMenu(t *testing.T) {
	test.NewTempApp(t)
	nav := &fakeNav{}

	p := NewTicTacToePage(nav, quiet)
	test.Tap(p.navBar.BackButton)

	assert.Equal(t, []string{MainMenu}, nav.shown)
}
