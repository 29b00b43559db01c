package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/browse/internal/domain/entity"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/logging"
)

type placeRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewPlaceRepository creates a new places repository.
func NewPlaceRepository(db *sql.DB) repository.PlaceRepository {
	return &placeRepo{db: db, now: time.Now}
}

const placeColumns = `id, url, title, bookmarked, visit_count, last_visited, created_at`

const recordVisit = `
INSERT INTO places (url, title, visit_count, last_visited, created_at)
VALUES (?, ?, 1, ?, ?)
ON CONFLICT(url) DO UPDATE SET
    title = CASE WHEN excluded.title != '' THEN excluded.title ELSE places.title END,
    visit_count = places.visit_count + 1,
    last_visited = excluded.last_visited`

func (r *placeRepo) RecordVisit(ctx context.Context, url, title string) (*entity.Place, error) {
	now := r.now().UnixNano()
	if _, err := r.db.ExecContext(ctx, recordVisit, url, title, now, now); err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(url, 80)).Msg("place visited")
	return r.FindByURL(ctx, url)
}

func (r *placeRepo) FindByURL(ctx context.Context, url string) (*entity.Place, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+placeColumns+` FROM places WHERE url = ?`, url)
	place, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return place, nil
}

// Search matches every whitespace-separated term against URL or title.
func (r *placeRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Place, error) {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return []*entity.Place{}, nil
	}

	var (
		where []string
		args  []any
	)
	for _, term := range terms {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		where = append(where, `(lower(url) LIKE ? ESCAPE '\' OR lower(title) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	args = append(args, limit)

	q := `SELECT ` + placeColumns + ` FROM places WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY bookmarked DESC, visit_count DESC, last_visited DESC LIMIT ?`
	return r.queryPlaces(ctx, q, args...)
}

const setBookmarked = `
INSERT INTO places (url, title, bookmarked, visit_count, last_visited, created_at)
VALUES (?, ?, ?, 0, 0, ?)
ON CONFLICT(url) DO UPDATE SET
    title = CASE WHEN excluded.title != '' THEN excluded.title ELSE places.title END,
    bookmarked = excluded.bookmarked`

func (r *placeRepo) SetBookmarked(ctx context.Context, url, title string, bookmarked bool) (*entity.Place, error) {
	if _, err := r.db.ExecContext(ctx, setBookmarked, url, title, boolToInt(bookmarked), r.now().UnixNano()); err != nil {
		return nil, fmt.Errorf("set bookmark: %w", err)
	}
	return r.FindByURL(ctx, url)
}

func (r *placeRepo) GetRecent(ctx context.Context, limit int) ([]*entity.Place, error) {
	return r.queryPlaces(ctx,
		`SELECT `+placeColumns+` FROM places WHERE visit_count > 0 ORDER BY last_visited DESC, id DESC LIMIT ?`, limit)
}

func (r *placeRepo) GetBookmarks(ctx context.Context) ([]*entity.Place, error) {
	return r.queryPlaces(ctx,
		`SELECT `+placeColumns+` FROM places WHERE bookmarked = 1 ORDER BY title COLLATE NOCASE, url`)
}

func (r *placeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}

func (r *placeRepo) queryPlaces(ctx context.Context, query string, args ...any) ([]*entity.Place, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query places: %w", err)
	}
	defer func() { _ = rows.Close() }()

	places := []*entity.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, place)
	}
	return places, rows.Err()
}

func scanPlace(row rowScanner) (*entity.Place, error) {
	var (
		p           entity.Place
		bookmarked  int
		lastVisited int64
		createdAt   int64
	)
	if err := row.Scan(&p.ID, &p.URL, &p.Title, &bookmarked, &p.VisitCount, &lastVisited, &createdAt); err != nil {
		return nil, err
	}
	p.Bookmarked = bookmarked != 0
	if lastVisited > 0 {
		p.LastVisited = time.Unix(0, lastVisited)
	}
	p.CreatedAt = time.Unix(0, createdAt)
	return &p, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
