// Package cache implements the client's persistent local cache: one JSON
// snapshot per content key, last write wins, no expiry. A snapshot stays
// valid until a fresh fetch overwrites it, so screens can render saved
// content immediately while the network refresh runs.
package cache

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/peterbourgon/diskv/v3"
)

// Content keys, scoped by content type and parent id. These are the only
// keys the client ever writes.
const (
	KeyEmotions = "emotions"
	KeyChapters = "chapters"
)

// KeyMoods returns the cache key for the mood list under one emotion.
func KeyMoods(emotionID string) string {
	return "moods_" + emotionID
}

// KeyGuidance returns the cache key for one mood's guidance entry.
func KeyGuidance(moodID string) string {
	return "guidance_" + moodID
}

// KeyChapter returns the cache key for one chapter detail.
func KeyChapter(number int) string {
	return "chapter_" + strconv.Itoa(number)
}

// Cache is a disk-backed key-value store of JSON snapshots.
type Cache struct {
	d        *diskv.Diskv
	basePath string
}

// New opens a cache rooted at basePath, creating directories as needed.
// Writes go through diskv's temp-dir-and-rename path, so a crashed write
// never leaves a torn snapshot behind.
func New(basePath string) *Cache {
	return &Cache{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024,
		}),
		basePath: basePath,
	}
}

// Read loads the snapshot under key into dest. The boolean is false on a
// clean miss. A snapshot that no longer decodes is reported as an error;
// callers treat it the same as a miss.
func (c *Cache) Read(key string, dest any) (bool, error) {
	val, err := c.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read cache %q: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cache %q: %w", key, err)
	}

	return true, nil
}

// Write stores value as the snapshot under key, replacing any prior value.
func (c *Cache) Write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache %q: %w", key, err)
	}

	if err := c.d.Write(key, data); err != nil {
		return fmt.Errorf("write cache %q: %w", key, err)
	}

	return nil
}

// Delete removes the snapshot under key. Missing keys are not an error.
func (c *Cache) Delete(key string) error {
	err := c.d.Erase(key)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete cache %q: %w", key, err)
	}
	return nil
}

// Clear removes every cached snapshot.
func (c *Cache) Clear() error {
	if err := c.d.EraseAll(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the directory backing this cache.
func (c *Cache) Path() string {
	return c.basePath
}
