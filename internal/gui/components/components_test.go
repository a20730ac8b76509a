package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestGameLogAppendAndClear(t *testing.T) {
	test.NewTempApp(t)

	gl := NewGameLog()
	assert.Empty(t, gl.Last())

	gl.Append("first")
	gl.Append("second")
	assert.Equal(t, []string{"first", "second"}, gl.Lines())
	assert.Equal(t, "second", gl.Last())
	assert.Equal(t, "first\nsecond", gl.label.Text)

	gl.Clear()
	assert.Empty(t, gl.Lines())
	assert.Empty(t, gl.label.Text)
}

func TestStatusLineImportance(t *testing.T) {
	test.NewTempApp(t)

	sl := NewStatusLine("ready")
	assert.Equal(t, "ready", sl.Text())

	sl.SetError("broken")
	assert.Equal(t, "broken", sl.Text())
	assert.Equal(t, widget.DangerImportance, sl.Importance())

	sl.SetStatus("fine")
	assert.Equal(t, widget.MediumImportance, sl.Importance())
}

func TestNavBarCallbacks(t *testing.T) {
	test.NewTempApp(t)

	var newGames, backs int
	nb := NewNavBar("New Game", func() { newGames++ }, func() { backs++ })

	test.Tap(nb.NewGameButton)
	test.Tap(nb.BackButton)
	test.Tap(nb.BackButton)

	assert.Equal(t, 1, newGames)
	assert.Equal(t, 2, backs)
}

func TestSetEnabled(t *testing.T) {
	test.NewTempApp(t)

	entry := widget.NewEntry()
	button := widget.NewButton("Go", nil)

	SetEnabled(false, entry, button)
	assert.True(t, entry.Disabled())
	assert.True(t, button.Disabled())

	SetEnabled(true, entry, button)
	assert.False(t, entry.Disabled())
	assert.False(t, button.Disabled())
}
