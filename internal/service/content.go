// Package service provides the business logic layer for serving the seeded
// catalog of emotions, moods, guidance, and chapters.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shloka-app/shloka-server/internal/catalog"
	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
	"github.com/shloka-app/shloka-server/internal/store"
)

// ContentService serves the seeded catalog: emotions, moods, guidance, and
// chapters. All operations are reads; the only write path is SeedCatalog.
type ContentService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(store *store.Store, logger *slog.Logger) *ContentService {
	return &ContentService{
		store:  store,
		logger: logger,
	}
}

// SeedCatalog loads the embedded catalog into the store. It validates the
// catalog first and is a no-op when the stored fingerprint already matches.
func (s *ContentService) SeedCatalog(ctx context.Context) (bool, error) {
	return s.store.SeedCatalog(ctx, catalog.Default())
}

// ListEmotions returns all emotions. A seeded store always has eleven; an
// empty result means the store was never seeded and is a data fault, not an
// empty page.
func (s *ContentService) ListEmotions(ctx context.Context) ([]domain.Emotion, error) {
	emotions, err := s.store.ListEmotions(ctx)
	if err != nil {
		return nil, err
	}
	if len(emotions) == 0 {
		return nil, domainerrors.DataIntegrity("no emotions in store; catalog was never seeded")
	}
	return emotions, nil
}

// ListMoodsByEmotion returns the moods under one emotion.
func (s *ContentService) ListMoodsByEmotion(ctx context.Context, emotionID string) ([]domain.Mood, error) {
	return s.store.ListMoodsByEmotion(ctx, emotionID)
}

// GetGuidanceByMood returns the guidance entry for one mood.
func (s *ContentService) GetGuidanceByMood(ctx context.Context, moodID string) (*domain.Guidance, error) {
	return s.store.GetGuidanceByMood(ctx, moodID)
}

// ListChapters returns all chapters in ascending chapter order.
func (s *ContentService) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	chapters, err := s.store.ListChapters(ctx)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, domainerrors.DataIntegrity("no chapters in store; catalog was never seeded")
	}
	return chapters, nil
}

// GetChapterByNumber returns one chapter.
func (s *ContentService) GetChapterByNumber(ctx context.Context, number int) (*domain.Chapter, error) {
	return s.store.GetChapterByNumber(ctx, number)
}

// CheckIntegrity verifies the seeded data is present and internally
// consistent, using the stored fingerprint so the check stays cheap enough
// for a health endpoint.
func (s *ContentService) CheckIntegrity(ctx context.Context) error {
	fp, err := s.store.CatalogFingerprint(ctx)
	if err != nil {
		return fmt.Errorf("catalog fingerprint: %w", err)
	}

	if fp.Emotions == 0 || fp.Chapters == 0 {
		return domainerrors.DataIntegrityf("seeded catalog is empty (emotions=%d chapters=%d)", fp.Emotions, fp.Chapters)
	}
	if fp.Moods != fp.Guidance {
		return domainerrors.DataIntegrityf("mood/guidance counts diverge (moods=%d guidance=%d)", fp.Moods, fp.Guidance)
	}

	return nil
}
