package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
	"github.com/shloka-app/shloka-server/internal/store"
)

// setupContentService creates a content service over a temporary seeded
// store.
func setupContentService(t *testing.T) (*ContentService, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shloka-service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	st, err := store.New(dbPath, nil)
	require.NoError(t, err)

	svc := NewContentService(st, nil)

	seeded, err := svc.SeedCatalog(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return svc, cleanup
}

func TestContentService_ListEmotions(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	emotions, err := svc.ListEmotions(context.Background())
	require.NoError(t, err)
	assert.Len(t, emotions, 11)
}

func TestContentService_EveryMoodHasGuidance(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	ctx := context.Background()

	emotions, err := svc.ListEmotions(ctx)
	require.NoError(t, err)

	total := 0
	for _, e := range emotions {
		moods, err := svc.ListMoodsByEmotion(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, moods, 3, "emotion %s", e.ID)

		for _, m := range moods {
			g, err := svc.GetGuidanceByMood(ctx, m.ID)
			require.NoError(t, err, "mood %s", m.ID)
			assert.Equal(t, m.ID, g.MoodID)
			total++
		}
	}

	assert.Equal(t, 33, total)
}

func TestContentService_GetGuidanceByMood_Unknown(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	_, err := svc.GetGuidanceByMood(context.Background(), "nonexistent_mood")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_ListChapters(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	ctx := context.Background()

	chapters, err := svc.ListChapters(ctx)
	require.NoError(t, err)
	require.Len(t, chapters, 18)

	ch, err := svc.GetChapterByNumber(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "Path of Devotion", ch.NameEnglish)
}

func TestContentService_CheckIntegrity(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	assert.NoError(t, svc.CheckIntegrity(context.Background()))
}

func TestContentService_CheckIntegrity_Unseeded(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "shloka-service-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)
	defer st.Close()

	svc := NewContentService(st, nil)

	err = svc.CheckIntegrity(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = svc.ListEmotions(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrDataIntegrity)
}

func TestContentService_SeedCatalog_Idempotent(t *testing.T) {
	svc, cleanup := setupContentService(t)
	defer cleanup()

	seeded, err := svc.SeedCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
}
