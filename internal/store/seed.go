package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/shloka-app/shloka-server/internal/catalog"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
	"github.com/shloka-app/shloka-server/internal/validation"
)

// metaCatalogKey holds the fingerprint of the last seeded catalog.
var metaCatalogKey = []byte("meta:catalog")

// CatalogFingerprint returns the fingerprint stored by the last successful
// seed, or NOT_FOUND when the database has never been seeded.
func (s *Store) CatalogFingerprint(_ context.Context) (*catalog.Fingerprint, error) {
	var fp catalog.Fingerprint

	err := s.get(metaCatalogKey, &fp)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domainerrors.NotFound("catalog not seeded")
		}
		return nil, fmt.Errorf("failed to get catalog fingerprint: %w", err)
	}

	return &fp, nil
}

// SeedCatalog validates cat and writes it into the store. Seeding is
// guarded: when the stored fingerprint matches, nothing is written and the
// call reports seeded=false. A changed catalog (version bump or different
// counts) is re-seeded whole. All entities, indexes, and the fingerprint
// go in a single transaction, so a crashed seed leaves the previous
// dataset intact.
func (s *Store) SeedCatalog(ctx context.Context, cat catalog.Catalog) (seeded bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := cat.Validate(); err != nil {
		return false, err
	}
	if err := validateRecords(cat); err != nil {
		return false, err
	}

	want := cat.Fingerprint()
	if stored, err := s.CatalogFingerprint(ctx); err == nil && stored.Matches(want) {
		if s.logger != nil {
			s.logger.Debug("catalog already seeded", "version", stored.Version, "seeded_at", stored.SeededAt)
		}
		return false, nil
	} else if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return false, err
	}

	want.SeededAt = time.Now().UTC()

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, e := range cat.Emotions {
			if err := setInTxn(txn, emotionPrefix+e.ID, e); err != nil {
				return err
			}
		}
		for _, m := range cat.Moods {
			if err := setInTxn(txn, moodPrefix+m.ID, m); err != nil {
				return err
			}
			idxKey := []byte(moodByEmotionPrefix + m.EmotionID + ":" + m.ID)
			if err := txn.Set(idxKey, []byte{}); err != nil {
				return err
			}
		}
		for _, g := range cat.Guidance {
			if err := setInTxn(txn, guidancePrefix+g.ID, g); err != nil {
				return err
			}
			idxKey := []byte(guidanceByMoodPrefix + g.MoodID)
			if err := txn.Set(idxKey, []byte(g.ID)); err != nil {
				return err
			}
		}
		for _, ch := range cat.Chapters {
			key := fmt.Sprintf("%s%d", chapterPrefix, ch.ChapterNumber)
			if err := setInTxn(txn, key, ch); err != nil {
				return err
			}
		}

		return setInTxn(txn, string(metaCatalogKey), want)
	})
	if err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("catalog seeded",
			"version", want.Version,
			"emotions", want.Emotions,
			"moods", want.Moods,
			"guidance", want.Guidance,
			"chapters", want.Chapters,
		)
	}

	return true, nil
}

// validateRecords runs struct validation over every catalog record so a
// malformed entry aborts seeding with the offending id in the error.
func validateRecords(cat catalog.Catalog) error {
	v := validation.New()

	for _, e := range cat.Emotions {
		if err := v.Validate(e); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeDataIntegrity, "emotion %q is invalid", e.ID)
		}
	}
	for _, m := range cat.Moods {
		if err := v.Validate(m); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeDataIntegrity, "mood %q is invalid", m.ID)
		}
	}
	for _, g := range cat.Guidance {
		if err := v.Validate(g); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeDataIntegrity, "guidance %q is invalid", g.ID)
		}
	}
	for _, ch := range cat.Chapters {
		if err := v.Validate(ch); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeDataIntegrity, "chapter %q is invalid", ch.ID)
		}
	}

	return nil
}
