package gui

import (
	"errors"
	"fmt"

	"games-collection/internal/gui/pages"
	"games-collection/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

var (
	ErrUnknownPage   = errors.New("unknown page")
	ErrDuplicatePage = errors.New("page already registered")
)

// Host stacks every registered page in one container and keeps exactly one visible.
// Hidden pages stay mounted, so their state survives a trip through the menu.
type Host struct {
	stack  *fyne.Container
	pages  map[string]pages.Page
	order  []string
	active string
	logger logger.Logger
}

func NewHost(log logger.Logger) *Host {
	return &Host{
		stack:  container.NewStack(),
		pages:  make(map[string]pages.Page),
		logger: log,
	}
}

func (h *Host) Register(name string, page pages.Page) error {
	if _, exists := h.pages[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicatePage)
	}

	content := page.Content()
	content.Hide()
	h.stack.Add(content)
	h.pages[name] = page
	h.order = append(h.order, name)

	h.logger.Debug("PageHost", "page registered", map[string]interface{}{"page": name})
	return nil
}

// Show raises the named page. An unknown name leaves the current page in place.
func (h *Host) Show(name string) error {
	target, ok := h.pages[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownPage)
	}

	for other, page := range h.pages {
		if other != name {
			page.Content().Hide()
		}
	}
	target.Content().Show()
	h.active = name
	h.stack.Refresh()

	h.logger.Debug("PageHost", "page shown", map[string]interface{}{"page": name})
	return nil
}

func (h *Host) Active() string {
	return h.active
}

func (h *Host) Page(name string) (pages.Page, bool) {
	page, ok := h.pages[name]
	return page, ok
}

// Names returns registered page names in registration order.
func (h *Host) Names() []string {
	return append([]string(nil), h.order...)
}

func (h *Host) GetContainer() *fyne.Container {
	return h.stack
}
