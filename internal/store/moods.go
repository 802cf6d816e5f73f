package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// Key prefixes for mood storage.
const (
	moodPrefix          = "mood:"
	moodByEmotionPrefix = "idx:mood:emotion:" // emotionID:moodID -> empty
)

// GetMood retrieves a mood by ID.
func (s *Store) GetMood(ctx context.Context, id string) (*domain.Mood, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m domain.Mood
	key := []byte(moodPrefix + id)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainerrors.NotFoundf("mood %q not found", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// ListMoodsByEmotion returns the moods under one emotion, sorted by ID.
// An unknown emotion is NOT_FOUND; a known emotion with no moods means the
// seed is broken and reports DATA_INTEGRITY.
func (s *Store) ListMoodsByEmotion(ctx context.Context, emotionID string) ([]domain.Mood, error) {
	if _, err := s.GetEmotion(ctx, emotionID); err != nil {
		return nil, err
	}

	prefix := moodByEmotionPrefix + emotionID + ":"
	var moodIDs []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			key := string(it.Item().Key())
			moodIDs = append(moodIDs, strings.TrimPrefix(key, prefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(moodIDs) == 0 {
		return nil, domainerrors.DataIntegrityf("emotion %q has no moods", emotionID)
	}

	moods := make([]domain.Mood, 0, len(moodIDs))
	for _, id := range moodIDs {
		m, err := s.GetMood(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.DataIntegrityf("mood index for emotion %q points at missing mood %q", emotionID, id)
			}
			return nil, err
		}
		moods = append(moods, *m)
	}

	slices.SortFunc(moods, func(a, b domain.Mood) int {
		return strings.Compare(a.ID, b.ID)
	})

	return moods, nil
}

// ListMoods returns every mood in the catalog, sorted by ID.
func (s *Store) ListMoods(ctx context.Context) ([]domain.Mood, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var moods []domain.Mood
	prefix := []byte(moodPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m domain.Mood
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			})
			if err != nil {
				return fmt.Errorf("decode mood %s: %w", it.Item().Key(), err)
			}
			moods = append(moods, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(moods, func(a, b domain.Mood) int {
		return strings.Compare(a.ID, b.ID)
	})

	return moods, nil
}
