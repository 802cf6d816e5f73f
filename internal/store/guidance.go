package store

import (
	"context"
	"encoding/json/v2"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// Key prefixes for guidance storage.
const (
	guidancePrefix       = "guidance:"
	guidanceByMoodPrefix = "idx:guidance:mood:" // moodID -> guidance ID
)

// GetGuidance retrieves a guidance entry by ID.
func (s *Store) GetGuidance(ctx context.Context, id string) (*domain.Guidance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var g domain.Guidance
	key := []byte(guidancePrefix + id)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainerrors.NotFoundf("guidance %q not found", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// GetGuidanceByMood returns the guidance entry for a mood. The two failure
// modes stay distinguishable: an unknown mood is NOT_FOUND, while a known
// mood whose guidance is missing is a broken seed and reports
// DATA_INTEGRITY.
func (s *Store) GetGuidanceByMood(ctx context.Context, moodID string) (*domain.Guidance, error) {
	if _, err := s.GetMood(ctx, moodID); err != nil {
		return nil, err
	}

	var guidanceID string
	idxKey := []byte(guidanceByMoodPrefix + moodID)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idxKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainerrors.DataIntegrityf("mood %q has no guidance entry", moodID)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			guidanceID = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	g, err := s.GetGuidance(ctx, guidanceID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.DataIntegrityf("guidance index for mood %q points at missing entry %q", moodID, guidanceID)
		}
		return nil, err
	}

	return g, nil
}
