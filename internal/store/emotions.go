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

// Key prefixes for emotion storage.
const emotionPrefix = "emotion:"

// GetEmotion retrieves an emotion by ID.
func (s *Store) GetEmotion(ctx context.Context, id string) (*domain.Emotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var e domain.Emotion
	key := []byte(emotionPrefix + id)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainerrors.NotFoundf("emotion %q not found", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// ListEmotions returns all emotions sorted by ID.
func (s *Store) ListEmotions(ctx context.Context) ([]domain.Emotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var emotions []domain.Emotion
	prefix := []byte(emotionPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e domain.Emotion
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return fmt.Errorf("decode emotion %s: %w", it.Item().Key(), err)
			}
			emotions = append(emotions, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(emotions, func(a, b domain.Emotion) int {
		return strings.Compare(a.ID, b.ID)
	})

	return emotions, nil
}
