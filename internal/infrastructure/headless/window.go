package headless

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/browse/internal/application/port"
)

// ErrUnknownTab is returned when closing a tab the window does not own.
var ErrUnknownTab = errors.New("tab does not belong to this window")

// Window is an in-memory browser window.
type Window struct {
	mu   sync.Mutex
	tabs []*Surface
}

var _ port.BrowserWindow = (*Window)(nil)

// NewWindow returns a window without tabs.
func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Tabs() []port.NavigationSurface {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]port.NavigationSurface, len(w.tabs))
	for i, t := range w.tabs {
		out[i] = t
	}
	return out
}

func (w *Window) CloseTab(_ context.Context, tab port.NavigationSurface) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, t := range w.tabs {
		if port.NavigationSurface(t) == tab {
			w.tabs = append(w.tabs[:i], w.tabs[i+1:]...)
			return nil
		}
	}
	return ErrUnknownTab
}

func (w *Window) NewTab(_ context.Context) (port.NavigationSurface, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := NewSurface()
	w.tabs = append(w.tabs, s)
	return s, nil
}
