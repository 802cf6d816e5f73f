package domain

import "time"

// Bookmark is a client-local copy of a Guidance record. The server never
// sees bookmarks; membership is decided by guidance id equality.
type Bookmark struct {
	Guidance Guidance  `json:"guidance"`
	SavedAt  time.Time `json:"saved_at"`
}

// NewBookmark wraps a guidance record with the save timestamp.
func NewBookmark(g Guidance) Bookmark {
	return Bookmark{Guidance: g, SavedAt: time.Now().UTC()}
}

// ID returns the bookmarked guidance id.
func (b Bookmark) ID() string {
	return b.Guidance.ID
}
