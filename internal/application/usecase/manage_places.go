package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/logging"
)

// DefaultPlacesLimit caps search and recent listings when no limit is given.
const DefaultPlacesLimit = 20

// ManagePlacesUseCase records visits and manages bookmarks in the places store.
type ManagePlacesUseCase struct {
	placeRepo  repository.PlaceRepository
	maxResults int
}

// NewManagePlacesUseCase creates a new ManagePlacesUseCase.
func NewManagePlacesUseCase(placeRepo repository.PlaceRepository, maxResults int) *ManagePlacesUseCase {
	if maxResults <= 0 {
		maxResults = DefaultPlacesLimit
	}
	return &ManagePlacesUseCase{placeRepo: placeRepo, maxResults: maxResults}
}

func (uc *ManagePlacesUseCase) limit(n int) int {
	if n <= 0 || n > uc.maxResults {
		return uc.maxResults
	}
	return n
}

// RecordVisit notes that url was loaded with the given title.
func (uc *ManagePlacesUseCase) RecordVisit(ctx context.Context, url, title string) (*entity.Place, error) {
	entry, err := entity.NewHistoryEntry(strings.TrimSpace(url), title)
	if err != nil {
		return nil, err
	}

	place, err := uc.placeRepo.RecordVisit(ctx, entry.URL, entry.Title)
	if err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(entry.URL, 80)).
		Int64("visit_count", place.VisitCount).
		Msg("visit recorded")

	return place, nil
}

// RecordHistory records every entry of a window session, as done after a restore.
func (uc *ManagePlacesUseCase) RecordHistory(ctx context.Context, ws entity.WindowSession) error {
	for _, tab := range ws.Tabs {
		for _, e := range tab.Entries {
			if _, err := uc.RecordVisit(ctx, e.URL, e.Title); err != nil {
				return err
			}
		}
	}
	return nil
}

// Search matches query against known URLs and titles. An empty query returns nothing.
func (uc *ManagePlacesUseCase) Search(ctx context.Context, query string, limit int) ([]*entity.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Place{}, nil
	}

	places, err := uc.placeRepo.Search(ctx, query, uc.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("matches", len(places)).
		Msg("places search completed")

	return places, nil
}

// Bookmark flags url as a bookmark, creating the place when needed.
func (uc *ManagePlacesUseCase) Bookmark(ctx context.Context, url, title string) (*entity.Place, error) {
	entry, err := entity.NewHistoryEntry(strings.TrimSpace(url), title)
	if err != nil {
		return nil, err
	}
	place, err := uc.placeRepo.SetBookmarked(ctx, entry.URL, entry.Title, true)
	if err != nil {
		return nil, fmt.Errorf("bookmark: %w", err)
	}
	return place, nil
}

// Unbookmark clears the bookmark flag. The visit history is kept.
func (uc *ManagePlacesUseCase) Unbookmark(ctx context.Context, url string) error {
	existing, err := uc.placeRepo.FindByURL(ctx, url)
	if err != nil {
		return fmt.Errorf("find place: %w", err)
	}
	if existing == nil || !existing.Bookmarked {
		return nil
	}
	if _, err := uc.placeRepo.SetBookmarked(ctx, url, existing.Title, false); err != nil {
		return fmt.Errorf("unbookmark: %w", err)
	}
	return nil
}

// Recent returns the most recently visited places.
func (uc *ManagePlacesUseCase) Recent(ctx context.Context, limit int) ([]*entity.Place, error) {
	places, err := uc.placeRepo.GetRecent(ctx, uc.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent places: %w", err)
	}
	return places, nil
}

// Bookmarks returns every bookmarked place.
func (uc *ManagePlacesUseCase) Bookmarks(ctx context.Context) ([]*entity.Place, error) {
	places, err := uc.placeRepo.GetBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return places, nil
}

// Delete forgets a place.
func (uc *ManagePlacesUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.placeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}
