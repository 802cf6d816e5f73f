// Package catalog holds the reference dataset the server ships with:
// every emotion, mood, guidance entry, and chapter, plus the integrity
// checks that keep the four tables coherent. The data is embedded in the
// binary; the store seeds it into Badger at startup.
package catalog

import (
	"time"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
	"github.com/shloka-app/shloka-server/internal/normalize"
)

// Version identifies the shipped dataset. Bump it whenever a table below
// changes so running servers re-seed on their next start.
const Version = 1

// MoodsPerEmotion is fixed across the catalog. The client renders mood
// pickers as uniform grids and relies on this.
const MoodsPerEmotion = 3

// Catalog bundles the four seed tables.
type Catalog struct {
	Emotions []domain.Emotion
	Moods    []domain.Mood
	Guidance []domain.Guidance
	Chapters []domain.Chapter
}

// Default returns the embedded catalog.
func Default() Catalog {
	return Catalog{
		Emotions: emotions,
		Moods:    moods,
		Guidance: guidanceEntries,
		Chapters: chapters,
	}
}

// Fingerprint identifies a seeded dataset so repeat seeding can no-op.
// SeededAt is filled in by the store when the data is written.
type Fingerprint struct {
	Version  int       `json:"version"`
	Emotions int       `json:"emotions"`
	Moods    int       `json:"moods"`
	Guidance int       `json:"guidance"`
	Chapters int       `json:"chapters"`
	SeededAt time.Time `json:"seeded_at"`
}

// Fingerprint summarizes the catalog for the seeding guard.
func (c Catalog) Fingerprint() Fingerprint {
	return Fingerprint{
		Version:  Version,
		Emotions: len(c.Emotions),
		Moods:    len(c.Moods),
		Guidance: len(c.Guidance),
		Chapters: len(c.Chapters),
	}
}

// Matches reports whether two fingerprints describe the same dataset.
// SeededAt is ignored.
func (f Fingerprint) Matches(other Fingerprint) bool {
	return f.Version == other.Version &&
		f.Emotions == other.Emotions &&
		f.Moods == other.Moods &&
		f.Guidance == other.Guidance &&
		f.Chapters == other.Chapters
}

// Validate checks every cross-record invariant of the catalog and returns
// a DATA_INTEGRITY error naming the offending id on the first violation.
// Field-level checks (required fields, slug and reference formats) are the
// validation package's job; this covers what struct tags cannot see:
// referential integrity, the mood/guidance bijection, and ordering.
func (c Catalog) Validate() error {
	if len(c.Emotions) == 0 {
		return domainerrors.DataIntegrity("catalog has no emotions")
	}
	if len(c.Moods) != len(c.Guidance) {
		return domainerrors.DataIntegrityf("catalog has %d moods but %d guidance entries", len(c.Moods), len(c.Guidance))
	}
	if len(c.Chapters) != domain.ChapterCount {
		return domainerrors.DataIntegrityf("catalog has %d chapters, want %d", len(c.Chapters), domain.ChapterCount)
	}

	emotionIDs := make(map[string]bool, len(c.Emotions))
	for _, e := range c.Emotions {
		if emotionIDs[e.ID] {
			return domainerrors.DataIntegrityf("duplicate emotion %q", e.ID)
		}
		emotionIDs[e.ID] = true
		if err := checkSanskrit(e.ID, e.NameSanskrit); err != nil {
			return err
		}
	}

	moodIDs := make(map[string]bool, len(c.Moods))
	perEmotion := make(map[string]int, len(c.Emotions))
	for _, m := range c.Moods {
		if moodIDs[m.ID] {
			return domainerrors.DataIntegrityf("duplicate mood %q", m.ID)
		}
		moodIDs[m.ID] = true
		if !emotionIDs[m.EmotionID] {
			return domainerrors.DataIntegrityf("mood %q references unknown emotion %q", m.ID, m.EmotionID)
		}
		if !hasIDPrefix(m.ID, m.EmotionID) {
			return domainerrors.DataIntegrityf("mood %q is not named under emotion %q", m.ID, m.EmotionID)
		}
		perEmotion[m.EmotionID]++
	}
	for id := range emotionIDs {
		if perEmotion[id] != MoodsPerEmotion {
			return domainerrors.DataIntegrityf("emotion %q has %d moods, want %d", id, perEmotion[id], MoodsPerEmotion)
		}
	}

	guided := make(map[string]bool, len(c.Guidance))
	for _, g := range c.Guidance {
		if !moodIDs[g.MoodID] {
			return domainerrors.DataIntegrityf("guidance %q references unknown mood %q", g.ID, g.MoodID)
		}
		if guided[g.MoodID] {
			return domainerrors.DataIntegrityf("duplicate guidance for mood %q", g.MoodID)
		}
		guided[g.MoodID] = true
		if g.ID != domain.GuidanceIDFor(g.MoodID) {
			return domainerrors.DataIntegrityf("guidance %q should be named %q", g.ID, domain.GuidanceIDFor(g.MoodID))
		}
		chapter, _, ok := normalize.ParseVerseReference(g.VerseReference)
		if !ok {
			return domainerrors.DataIntegrityf("guidance %q has malformed verse reference %q", g.ID, g.VerseReference)
		}
		if chapter > domain.ChapterCount {
			return domainerrors.DataIntegrityf("guidance %q cites nonexistent chapter %d", g.ID, chapter)
		}
		if err := checkSanskrit(g.ID, g.SanskritVerse); err != nil {
			return err
		}
	}
	// Equal counts plus one guidance per mood makes the mapping a bijection;
	// report the uncovered mood anyway so the error names an id.
	for id := range moodIDs {
		if !guided[id] {
			return domainerrors.DataIntegrityf("mood %q has no guidance entry", id)
		}
	}

	for i, ch := range c.Chapters {
		if ch.ChapterNumber != i+1 {
			return domainerrors.DataIntegrityf("chapter at position %d has number %d, want %d", i, ch.ChapterNumber, i+1)
		}
		if ch.ID != domain.ChapterIDFor(ch.ChapterNumber) {
			return domainerrors.DataIntegrityf("chapter %d should be named %q", ch.ChapterNumber, domain.ChapterIDFor(ch.ChapterNumber))
		}
		if err := checkSanskrit(ch.ID, ch.NameSanskrit); err != nil {
			return err
		}
		for _, v := range ch.Verses {
			num, _, ok := normalize.ParseVerseNumber(v.VerseNumber)
			if !ok {
				return domainerrors.DataIntegrityf("chapter %d has malformed verse number %q", ch.ChapterNumber, v.VerseNumber)
			}
			if num != ch.ChapterNumber {
				return domainerrors.DataIntegrityf("verse %q filed under chapter %d", v.VerseNumber, ch.ChapterNumber)
			}
			if err := checkSanskrit(ch.ID, v.Sanskrit); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkSanskrit enforces that a Sanskrit field actually carries Devanagari
// text and is stored NFC-normalized, so cache keys and byte comparisons
// stay stable across content sources.
func checkSanskrit(id, s string) error {
	if !normalize.HasDevanagari(s) {
		return domainerrors.DataIntegrityf("%s: sanskrit field has no Devanagari text", id)
	}
	if !normalize.IsNFC(s) {
		return domainerrors.DataIntegrityf("%s: sanskrit field is not NFC-normalized", id)
	}
	return nil
}

func hasIDPrefix(id, parent string) bool {
	return len(id) > len(parent)+1 && id[:len(parent)] == parent && id[len(parent)] == '_'
}
