package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// Key prefix for chapter storage. Keys carry the bare chapter number, so
// listing must sort numerically rather than trust scan order.
const chapterPrefix = "chapter:"

// GetChapterByNumber retrieves one chapter.
func (s *Store) GetChapterByNumber(ctx context.Context, number int) (*domain.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ch domain.Chapter
	key := []byte(fmt.Sprintf("%s%d", chapterPrefix, number))

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainerrors.NotFoundf("chapter %d not found", number)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ch)
		})
	})
	if err != nil {
		return nil, err
	}

	return &ch, nil
}

// ListChapters returns all chapters sorted by chapter number.
func (s *Store) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var chapters []domain.Chapter
	prefix := []byte(chapterPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var ch domain.Chapter
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ch)
			})
			if err != nil {
				return fmt.Errorf("decode chapter %s: %w", it.Item().Key(), err)
			}
			chapters = append(chapters, ch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys sort lexicographically ("chapter:10" before "chapter:2").
	slices.SortFunc(chapters, func(a, b domain.Chapter) int {
		return a.ChapterNumber - b.ChapterNumber
	})

	return chapters, nil
}
