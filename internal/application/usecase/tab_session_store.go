package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/browse/internal/application/port"
	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/session"
	"github.com/bnema/browse/internal/logging"
)

// DefaultHomeURL is where empty and unrestorable tabs are sent.
const DefaultHomeURL = "about:blank"

// TabFallback records a tab that was sent to the home location instead of
// getting its saved history back.
type TabFallback struct {
	Tab int
	Err error
}

// RestoreReport summarizes a window restore.
type RestoreReport struct {
	Tabs      int
	Fallbacks []TabFallback
}

// TabSessionStore captures the tabs of a window into a WindowSession and
// rebuilds a window from one.
type TabSessionStore struct {
	homeURL string
}

// NewTabSessionStore creates a store that sends empty tabs to homeURL.
func NewTabSessionStore(homeURL string) *TabSessionStore {
	if homeURL == "" {
		homeURL = DefaultHomeURL
	}
	return &TabSessionStore{homeURL: homeURL}
}

// HomeURL returns the default location.
func (s *TabSessionStore) HomeURL() string {
	return s.homeURL
}

// Save encodes every tab in order. Tabs without history are kept so that the
// tab count survives a restore.
func (s *TabSessionStore) Save(ctx context.Context, tabs []port.NavigationSurface) entity.WindowSession {
	ws := session.EncodeWindow(tabs)

	logging.FromContext(ctx).Debug().
		Int("tab_count", len(ws.Tabs)).
		Int("entry_count", ws.CountEntries()).
		Msg("captured window session")

	return ws
}

// SaveWindow is Save over the window's current tabs.
func (s *TabSessionStore) SaveWindow(ctx context.Context, window port.BrowserWindow) entity.WindowSession {
	return s.Save(ctx, window.Tabs())
}

// Restore discards every tab of window and recreates one tab per snapshot.
// A tab whose snapshot cannot be applied is sent to the home location and
// listed in the report; it never aborts the other tabs. An empty session
// yields a single tab at the home location.
func (s *TabSessionStore) Restore(
	ctx context.Context,
	window port.BrowserWindow,
	ws entity.WindowSession,
) (*RestoreReport, error) {
	tabs := make([]session.DecodedTab, 0, len(ws.Tabs))
	for _, snap := range ws.Tabs {
		tabs = append(tabs, session.DecodedTab{Snapshot: snap})
	}
	return s.restore(ctx, window, tabs)
}

// RestoreRaw decodes persisted window data in any known generation and
// restores it. Data that cannot be read at all degrades to a single home tab.
func (s *TabSessionStore) RestoreRaw(ctx context.Context, window port.BrowserWindow, data []byte) (*RestoreReport, error) {
	log := logging.FromContext(ctx)

	tabs, err := session.DecodeWindow(data)
	if err != nil {
		log.Warn().Err(err).Msg("unreadable window session, starting at home")

		report, restoreErr := s.restore(ctx, window, nil)
		if restoreErr != nil {
			return nil, restoreErr
		}
		report.Fallbacks = append(report.Fallbacks, TabFallback{Tab: 0, Err: &session.RestoreError{Tab: 0, Err: err}})
		return report, nil
	}

	return s.restore(ctx, window, tabs)
}

func (s *TabSessionStore) restore(
	ctx context.Context,
	window port.BrowserWindow,
	tabs []session.DecodedTab,
) (*RestoreReport, error) {
	log := logging.FromContext(ctx)

	for _, tab := range window.Tabs() {
		if err := window.CloseTab(ctx, tab); err != nil {
			log.Warn().Err(err).Msg("failed to close tab before restore")
		}
	}

	if len(tabs) == 0 {
		surface, err := window.NewTab(ctx)
		if err != nil {
			return nil, fmt.Errorf("create tab: %w", err)
		}
		if err := surface.Navigate(ctx, s.homeURL); err != nil {
			return nil, fmt.Errorf("navigate home: %w", err)
		}
		return &RestoreReport{Tabs: 1}, nil
	}

	report := &RestoreReport{Tabs: len(tabs)}
	for i, tab := range tabs {
		tabCtx := logging.WithTabIndex(ctx, i)
		surface, err := window.NewTab(tabCtx)
		if err != nil {
			return report, fmt.Errorf("create tab %d: %w", i, err)
		}

		restoreErr := tab.Err
		if restoreErr == nil {
			restoreErr = s.RestoreTab(tabCtx, surface, tab.Snapshot)
		}
		if restoreErr == nil {
			continue
		}

		var rerr *session.RestoreError
		if !errors.As(restoreErr, &rerr) || rerr.Tab != i {
			rerr = &session.RestoreError{Tab: i, Err: restoreErr}
		}
		report.Fallbacks = append(report.Fallbacks, TabFallback{Tab: i, Err: rerr})

		tabLog := logging.FromContext(tabCtx)
		tabLog.Warn().Err(rerr).Msg("tab history not restorable, starting at home")
		if err := surface.Navigate(tabCtx, s.homeURL); err != nil {
			tabLog.Error().Err(err).Msg("failed to navigate fallback tab home")
		}
	}

	log.Info().
		Int("tab_count", report.Tabs).
		Int("fallback_count", len(report.Fallbacks)).
		Msg("window session restored")

	return report, nil
}

// RestoreTab replaces the history of one surface. The snapshot is validated
// before the surface is touched, and the history is swapped in a single call,
// so a failure never leaves the surface half restored.
func (s *TabSessionStore) RestoreTab(ctx context.Context, surface port.NavigationSurface, snap entity.SessionSnapshot) error {
	if snap.IsEmpty() {
		if err := surface.Navigate(ctx, s.homeURL); err != nil {
			return fmt.Errorf("navigate home: %w", err)
		}
		return nil
	}

	if err := snap.Validate(); err != nil {
		return err
	}

	entries := snap.Clone().Entries
	if err := surface.ReplaceHistory(ctx, entries, snap.CurrentIndex); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
