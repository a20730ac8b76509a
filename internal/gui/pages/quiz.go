package pages

import (
	"fmt"
	"time"

	"games-collection/internal/games"
	"games-collection/internal/gui/components"
	"games-collection/internal/gui/schedule"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type QuizPage struct {
	game      *games.Quiz
	questions QuestionSource
	scheduler schedule.Scheduler
	delay     time.Duration
	logger    logger.Logger

	content       fyne.CanvasObject
	scoreLabel    *widget.Label
	questionLabel *widget.Label
	answerEntry   *widget.Entry
	submitButton  *widget.Button
	feedback      *components.StatusLine
	navBar        *components.NavBar
}

func NewQuizPage(nav Navigator, questions QuestionSource, scheduler schedule.Scheduler, delay time.Duration, log logger.Logger) *QuizPage {
	p := &QuizPage{
		game:      games.NewQuiz(),
		questions: questions,
		scheduler: scheduler,
		delay:     delay,
		logger:    log,
	}

	p.scoreLabel = widget.NewLabelWithStyle("Score: 0/0", fyne.TextAlignCenter, fyne.TextStyle{})
	p.questionLabel = widget.NewLabel("")
	p.questionLabel.Wrapping = fyne.TextWrapWord
	p.answerEntry = widget.NewEntry()
	p.answerEntry.OnSubmitted = func(string) { p.submitAnswer() }
	p.submitButton = widget.NewButton("Submit", p.submitAnswer)
	p.feedback = components.NewStatusLine("")
	p.navBar = components.NewNavBar("New Game", p.startGame, backToMenu(nav, log, "Quiz"))

	p.content = container.NewVBox(
		components.NewTitle("=== Quiz Game ==="),
		p.scoreLabel,
		p.questionLabel,
		components.InputRow("Your Answer:", p.answerEntry, p.submitButton),
		p.feedback.GetContainer(),
		p.navBar.GetContainer(),
	)

	p.startGame()
	return p
}

func (p *QuizPage) Content() fyne.CanvasObject {
	return p.content
}

func (p *QuizPage) startGame() {
	p.feedback.SetStatus("")
	p.answerEntry.SetText("")

	if err := p.game.Start(p.questions()); err != nil {
		p.questionLabel.SetText("No questions loaded. Check quiz_data.json.")
		p.scoreLabel.SetText("Score: 0/0")
		components.SetEnabled(false, p.answerEntry, p.submitButton)
		p.logger.Error("Quiz", err, nil)
		return
	}

	components.SetEnabled(true, p.answerEntry, p.submitButton)
	p.showQuestion()
	p.logger.Info("Quiz", "game started", map[string]interface{}{"questions": p.game.Total()})
}

func (p *QuizPage) showQuestion() {
	q, idx, ok := p.game.Current()
	if !ok {
		p.endGame()
		return
	}

	p.questionLabel.SetText(fmt.Sprintf("Q%d: %s", idx+1, q.Question))
	p.scoreLabel.SetText(fmt.Sprintf("Score: %d/%d", p.game.Score(), p.game.Total()))
	p.answerEntry.SetText("")
	p.feedback.SetStatus("")
	components.SetEnabled(true, p.answerEntry, p.submitButton)
}

func (p *QuizPage) submitAnswer() {
	fb, err := p.game.Submit(p.answerEntry.Text)
	if err != nil {
		p.logger.Debug("Quiz", "answer ignored", map[string]interface{}{"error": err.Error()})
		return
	}

	if fb.Correct {
		p.feedback.SetSuccess("Correct!")
	} else {
		p.feedback.SetError(fmt.Sprintf("Wrong! Answer: %s", fb.Expected))
	}
	components.SetEnabled(false, p.answerEntry, p.submitButton)

	round := fb.Round
	p.scheduler.AfterFunc(p.delay, func() {
		if p.game.Advance(round) {
			p.showQuestion()
		}
	})
}

func (p *QuizPage) endGame() {
	score, total := p.game.Score(), p.game.Total()
	p.questionLabel.SetText(fmt.Sprintf("Quiz Finished! Your final score is: %d/%d", score, total))
	p.scoreLabel.SetText(fmt.Sprintf("Final Score: %d/%d", score, total))
	components.SetEnabled(false, p.answerEntry, p.submitButton)

	p.logger.Info("Quiz", "game finished", map[string]interface{}{
		"score": score,
		"total": total,
	})
}
