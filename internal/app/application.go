package app

import (
	"games-collection/internal/config"
	"games-collection/internal/data"
	"games-collection/internal/games"
	"games-collection/internal/gui"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Text-based Games Collection"
	AppID        = "com.textgames.collection"
	AppVersion   = "1.0.0"
	WindowWidth  = 600
	WindowHeight = 450
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	lifecycle  *Lifecycle
	logger     logger.Logger
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	return newApplication(fyneApp, cfg, log)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"words_file": cfg.WordsFile,
		"quiz_file":  cfg.QuizFile,
	})

	loader := data.NewLoader(cfg.WordsFile, cfg.QuizFile, log)
	lifecycle := NewLifecycle(log, func() {
		fyne.Do(fyneApp.Quit)
	})

	guiManager, err := gui.NewManager(gui.Options{
		Sources: gui.Sources{
			Words:     loader.Words,
			Questions: loader.Questions,
		},
		Rand:          games.NewRand(),
		FeedbackDelay: cfg.FeedbackDelay,
		OnExit:        lifecycle.Shutdown,
	}, log)
	if err != nil {
		return nil, err
	}
	lifecycle.SetGUIManager(guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		lifecycle:  lifecycle,
		logger:     log,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Lifecycle exposes the shutdown sequence so signal handling can share it.
func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.lifecycle.finish()

	return nil
}
