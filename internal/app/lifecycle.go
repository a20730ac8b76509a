package app

import (
	"sync"

	"games-collection/internal/gui"
	"games-collection/internal/logger"
)

type Lifecycle struct {
	mu         sync.Mutex
	guiManager *gui.Manager
	logger     logger.Logger
	quit       func()
	isShutdown bool
}

func NewLifecycle(log logger.Logger, quit func()) *Lifecycle {
	return &Lifecycle{
		logger: log,
		quit:   quit,
	}
}

func (l *Lifecycle) SetGUIManager(gm *gui.Manager) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.guiManager = gm
}

// Shutdown stops pending UI work and quits the application. Only the first call does anything.
func (l *Lifecycle) Shutdown() {
	l.shutdown(true)
}

// finish runs the shutdown sequence after the event loop has already returned.
func (l *Lifecycle) finish() {
	l.shutdown(false)
}

func (l *Lifecycle) shutdown(quit bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	if quit && l.quit != nil {
		l.quit()
	}
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
