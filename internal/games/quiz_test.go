package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleQuestions = []Question{
	{Question: "Capital of France?", Answer: "Paris"},
	{Question: "2 + 2?", Answer: "4"},
	{Question: "Largest planet?", Answer: "Jupiter"},
}

func TestQuizScoresTwoOfThree(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Start(sampleQuestions))

	answers := []string{"  paris ", "5", "JUPITER"}
	for i, a := range answers {
		cur, idx, ok := q.Current()
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, sampleQuestions[i], cur)

		fb, err := q.Submit(a)
		require.NoError(t, err)
		assert.Equal(t, PhaseFeedback, q.Phase())
		assert.True(t, q.Advance(fb.Round))
	}

	assert.Equal(t, PhaseFinished, q.Phase())
	assert.Equal(t, 2, q.Score())
	assert.Equal(t, 3, q.Total())
}

func TestQuizFeedbackCarriesExpectedAnswer(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Start(sampleQuestions))

	fb, err := q.Submit("London")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, "paris", fb.Expected)
	assert.Equal(t, 0, fb.Score)
	assert.Equal(t, 3, fb.Total)
}

func TestQuizIgnoresInputDuringFeedback(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Start(sampleQuestions))
	_, err := q.Submit("paris")
	require.NoError(t, err)

	_, err = q.Submit("4")
	assert.ErrorIs(t, err, ErrNotPlaying)
	assert.Equal(t, 1, q.Score())
}

func TestQuizStaleAdvanceIgnoredAfterRestart(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Start(sampleQuestions))
	fb, err := q.Submit("paris")
	require.NoError(t, err)

	require.NoError(t, q.Start(sampleQuestions))
	assert.False(t, q.Advance(fb.Round))

	_, idx, ok := q.Current()
	assert.True(t, ok)
	assert.Zero(t, idx)
	assert.Zero(t, q.Score())
}

func TestQuizEmptyListFails(t *testing.T) {
	q := NewQuiz()
	err := q.Start(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, PhaseFailed, q.Phase())

	_, err = q.Submit("x")
	assert.ErrorIs(t, err, ErrNotPlaying)
	_, _, ok := q.Current()
	assert.False(t, ok)
}
