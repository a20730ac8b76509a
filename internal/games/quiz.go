package games

import (
	"errors"
	"strings"
)

var ErrNoQuestions = errors.New("no questions available")

// Question is one quiz record as stored in the question file.
type Question struct {
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" validate:"required"`
}

type Feedback struct {
	Correct  bool
	Expected string
	Score    int
	Total    int
	Round    uint64
}

// Quiz walks an ordered question list. After each answer it sits in PhaseFeedback
// until Advance is called, which the page schedules after a short delay.
type Quiz struct {
	questions []Question
	index     int
	score     int
	phase     Phase
	round     uint64
}

func NewQuiz() *Quiz {
	return &Quiz{}
}

// Start begins a new round over questions. An empty list leaves the quiz in PhaseFailed.
func (q *Quiz) Start(questions []Question) error {
	q.round++
	q.questions = questions
	q.index = 0
	q.score = 0

	if len(questions) == 0 {
		q.phase = PhaseFailed
		return ErrNoQuestions
	}
	q.phase = PhasePlaying
	return nil
}

// Submit scores a trimmed, case-insensitive answer against the current question.
func (q *Quiz) Submit(answer string) (Feedback, error) {
	if q.phase != PhasePlaying {
		return Feedback{}, ErrNotPlaying
	}

	expected := normalizeAnswer(q.questions[q.index].Answer)
	correct := normalizeAnswer(answer) == expected
	if correct {
		q.score++
	}
	q.index++
	q.phase = PhaseFeedback

	return Feedback{
		Correct:  correct,
		Expected: expected,
		Score:    q.score,
		Total:    len(q.questions),
		Round:    q.round,
	}, nil
}

// Advance leaves the feedback state. Calls carrying a round from before the last Start are ignored.
func (q *Quiz) Advance(round uint64) bool {
	if round != q.round || q.phase != PhaseFeedback {
		return false
	}
	if q.index >= len(q.questions) {
		q.phase = PhaseFinished
	} else {
		q.phase = PhasePlaying
	}
	return true
}

// Current returns the question awaiting an answer and its zero-based position.
func (q *Quiz) Current() (Question, int, bool) {
	if q.phase != PhasePlaying || q.index >= len(q.questions) {
		return Question{}, q.index, false
	}
	return q.questions[q.index], q.index, true
}

func (q *Quiz) Score() int { return q.score }
func (q *Quiz) Total() int { return len(q.questions) }
func (q *Quiz) Phase() Phase { return q.phase }
func (q *Quiz) Round() uint64 { return q.round }

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
