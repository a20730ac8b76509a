package gui

import (
	"time"

	"games-collection/internal/games"
	"games-collection/internal/gui/pages"
	"games-collection/internal/gui/schedule"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
)

// Sources supplies the external data the word and quiz games read on every new game.
type Sources struct {
	Words     pages.WordSource
	Questions pages.QuestionSource
}

type Options struct {
	Sources       Sources
	Rand          games.Rand
	Scheduler     *schedule.UIScheduler
	FeedbackDelay time.Duration
	OnExit        func()
}

// Manager owns the page host and every page registered on it.
type Manager struct {
	host       *Host
	scheduler  *schedule.UIScheduler
	logger     logger.Logger
	isShutdown bool
}

func NewManager(opts Options, log logger.Logger) (*Manager, error) {
	if opts.Rand == nil {
		opts.Rand = games.NewRand()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.NewUIScheduler()
	}
	if opts.Sources.Words == nil {
		opts.Sources.Words = func() []string { return []string{games.WordListSentinel} }
	}
	if opts.Sources.Questions == nil {
		opts.Sources.Questions = func() []games.Question { return nil }
	}

	host := NewHost(log)
	manager := &Manager{
		host:      host,
		scheduler: opts.Scheduler,
		logger:    log,
	}

	registrations := []struct {
		name string
		page pages.Page
	}{
		{pages.MainMenu, pages.NewMenuPage(host, opts.OnExit, log)},
		{pages.NumberGuessing, pages.NewNumberGuessingPage(host, opts.Rand, log)},
		{pages.Hangman, pages.NewHangmanPage(host, opts.Sources.Words, opts.Rand, log)},
		{pages.RockPaperScissors, pages.NewRockPaperScissorsPage(host, opts.Rand, log)},
		{pages.HigherOrLower, pages.NewHigherOrLowerPage(host, opts.Rand, log)},
		{pages.DiceBetting, pages.NewDiceBettingPage(host, opts.Rand, log)},
		{pages.Quiz, pages.NewQuizPage(host, opts.Sources.Questions, opts.Scheduler, opts.FeedbackDelay, log)},
		{pages.TicTacToe, pages.NewTicTacToePage(host, log)},
	}
	for _, r := range registrations {
		if err := host.Register(r.name, r.page); err != nil {
			return nil, err
		}
	}

	if err := host.Show(pages.MainMenu); err != nil {
		return nil, err
	}

	log.Info("GUIManager", "pages registered", map[string]interface{}{
		"pages": host.Names(),
	})
	return manager, nil
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.host.GetContainer()
}

func (m *Manager) Host() *Host {
	return m.host
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.scheduler.Shutdown()
	m.logger.Info("GUIManager", "shutdown completed", nil)
}
