package cli

import (
	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// Payload validators for the controller boundary. A response that parses
// but fails these is a DATA_INTEGRITY fault: the backend answered, the
// answer is unusable, and the cache (if any) is better than what arrived.

func validEmotions(list []domain.Emotion) error {
	if len(list) == 0 {
		return domainerrors.DataIntegrity("server returned an empty emotion list")
	}
	for _, e := range list {
		if e.ID == "" || e.NameEnglish == "" {
			return domainerrors.DataIntegrity("emotion entry is missing id or name")
		}
	}
	return nil
}

func validMoods(list []domain.Mood) error {
	if len(list) == 0 {
		return domainerrors.DataIntegrity("server returned an empty mood list")
	}
	for _, m := range list {
		if m.ID == "" || m.EmotionID == "" || m.Name == "" {
			return domainerrors.DataIntegrity("mood entry is missing id, emotion, or name")
		}
	}
	return nil
}

func validGuidance(g domain.Guidance) error {
	if g.Title == "" || g.MoodID == "" {
		return domainerrors.DataIntegrity("guidance entry is missing its title or mood")
	}
	return nil
}

func validChapters(list []domain.Chapter) error {
	if len(list) == 0 {
		return domainerrors.DataIntegrity("server returned an empty chapter list")
	}
	for _, c := range list {
		if c.ChapterNumber < 1 || c.NameEnglish == "" {
			return domainerrors.DataIntegrity("chapter entry is missing its number or name")
		}
	}
	return nil
}

func validChapter(c domain.Chapter) error {
	if c.ChapterNumber < 1 || c.NameEnglish == "" {
		return domainerrors.DataIntegrity("chapter is missing its number or name")
	}
	return nil
}
