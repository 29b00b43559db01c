package entity

import "time"

// Place is a visited or bookmarked location in the places store.
type Place struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Bookmarked  bool      `json:"bookmarked"`
	VisitCount  int64     `json:"visit_count"`
	LastVisited time.Time `json:"last_visited"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayTitle returns the title, falling back to the URL.
func (p *Place) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.URL
}
