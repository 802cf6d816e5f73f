// Package bookmarks persists the guidance entries the user has saved. The
// whole collection lives under a single key as one JSON list; every
// mutation is a read-modify-write of the full list, which is safe on the
// single foreground thread the client runs on.
package bookmarks

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/shloka-app/shloka-server/internal/domain"
)

// storeKey is the one key the bookmark list lives under.
const storeKey = "bookmarks"

// Store is the client-local bookmark store. The server never sees it.
type Store struct {
	d *diskv.Diskv
}

// New opens a bookmark store rooted at basePath. Writes are atomic via
// diskv's temp-dir rename, so a failed toggle leaves the previous list
// intact rather than a torn one.
func New(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024,
		}),
	}
}

// List returns the saved bookmarks, oldest first. It re-reads the disk on
// every call, so additions made by another screen are visible without a
// restart.
func (s *Store) List() ([]domain.Bookmark, error) {
	val, err := s.d.Read(storeKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var list []domain.Bookmark
	if err := json.Unmarshal(val, &list); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}

	return list, nil
}

// Contains reports whether the guidance id is currently bookmarked.
func (s *Store) Contains(guidanceID string) (bool, error) {
	list, err := s.List()
	if err != nil {
		return false, err
	}

	for _, b := range list {
		if b.ID() == guidanceID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds g to the list when absent and removes it when present,
// keyed by guidance id. It returns true when the entry is bookmarked
// after the call. Either the whole list is rewritten or nothing changes.
func (s *Store) Toggle(g domain.Guidance) (bool, error) {
	list, err := s.List()
	if err != nil {
		return false, err
	}

	kept := make([]domain.Bookmark, 0, len(list)+1)
	removed := false
	for _, b := range list {
		if b.ID() == g.ID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}

	bookmarked := false
	if !removed {
		kept = append(kept, domain.NewBookmark(g))
		bookmarked = true
	}

	if err := s.write(kept); err != nil {
		return false, err
	}
	return bookmarked, nil
}

// Clear removes every bookmark.
func (s *Store) Clear() error {
	err := s.d.Erase(storeKey)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear bookmarks: %w", err)
	}
	return nil
}

func (s *Store) write(list []domain.Bookmark) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := s.d.Write(storeKey, data); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}
