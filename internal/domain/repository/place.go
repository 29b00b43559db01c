package repository

import (
	"context"

	"github.com/bnema/browse/internal/domain/entity"
)

// PlaceRepository persists visited and bookmarked locations.
type PlaceRepository interface {
	// RecordVisit inserts the place or bumps its visit count and title.
	RecordVisit(ctx context.Context, url, title string) (*entity.Place, error)

	// FindByURL returns the place for url, or nil when unknown.
	FindByURL(ctx context.Context, url string) (*entity.Place, error)

	// Search matches query against URLs and titles. Bookmarks rank first.
	Search(ctx context.Context, query string, limit int) ([]*entity.Place, error)

	// SetBookmarked flags or unflags a place, creating it when needed.
	SetBookmarked(ctx context.Context, url, title string, bookmarked bool) (*entity.Place, error)

	// GetRecent returns places ordered by last visit.
	GetRecent(ctx context.Context, limit int) ([]*entity.Place, error)

	// GetBookmarks returns all bookmarked places.
	GetBookmarks(ctx context.Context) ([]*entity.Place, error)

	// Delete removes a place by ID.
	Delete(ctx context.Context, id int64) error
}
