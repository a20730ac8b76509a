// Package shutdown turns SIGINT/SIGTERM into the same ordered teardown the UI triggers.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"games-collection/internal/logger"
)

const stepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

type step struct {
	name      string
	component Shutdownable
}

type Manager struct {
	mu      sync.Mutex
	steps   []step
	logger  logger.Logger
	timeout time.Duration
	once    sync.Once
	stopped chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		timeout: stepTimeout,
		stopped: make(chan struct{}),
	}
}

// Register adds a named step. Steps run in reverse registration order.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, component: component})
}

// Listen shuts down on the first SIGINT or SIGTERM. The watcher goroutine exits once Shutdown has run.
func (m *Manager) Listen() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	go func() {
		defer stop()
		select {
		case <-ctx.Done():
			m.logger.Info("ShutdownManager", "shutdown signal received", nil)
			m.Shutdown()
		case <-m.stopped:
		}
	}()
}

// Shutdown runs every step once. A step that outlives the timeout is logged and left behind.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		close(m.stopped)

		m.mu.Lock()
		steps := append([]step(nil), m.steps...)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"steps": len(steps),
		})
		for i := len(steps) - 1; i >= 0; i-- {
			m.run(steps[i])
		}
		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) run(s step) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.component.Shutdown()
	}()

	select {
	case <-done:
		m.logger.Debug("ShutdownManager", "step completed", map[string]interface{}{"step": s.name})
	case <-time.After(m.timeout):
		m.logger.Warning("ShutdownManager", "step timed out", map[string]interface{}{"step": s.name})
	}
}
