package port

import (
	"context"

	"github.com/bnema/browse/internal/domain/entity"
)

// NavigationSurface is a live browsing surface owning one tab's history.
type NavigationSurface interface {
	// GetHistoryEntries returns the back/forward list, oldest first.
	GetHistoryEntries() []entity.HistoryEntry

	// GetCurrentIndex returns the position of the displayed entry.
	GetCurrentIndex() int

	// ReplaceHistory swaps the whole back/forward list in one step and
	// positions the surface at currentIndex. On error the surface keeps its
	// previous history.
	ReplaceHistory(ctx context.Context, entries []entity.HistoryEntry, currentIndex int) error

	// Navigate loads url as a new entry.
	Navigate(ctx context.Context, url string) error
}

// BrowserWindow owns an ordered set of tabs.
type BrowserWindow interface {
	// Tabs returns the tabs left to right.
	Tabs() []NavigationSurface

	// CloseTab destroys a tab and its surface.
	CloseTab(ctx context.Context, tab NavigationSurface) error

	// NewTab appends a blank tab and returns its surface.
	NewTab(ctx context.Context) (NavigationSurface, error)
}
