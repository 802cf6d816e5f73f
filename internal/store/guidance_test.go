package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

func TestGetGuidanceByMood(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	seedDefault(t, store)

	g, err := store.GetGuidanceByMood(ctx, "anger_world")
	require.NoError(t, err)
	assert.Equal(t, "guidance_anger_world", g.ID)
	assert.Equal(t, "Accept What Cannot Be Changed", g.Title)
	assert.Equal(t, "Bhagavad Gita 2.14", g.VerseReference)
	assert.NotEmpty(t, g.SanskritVerse)
	assert.NotEmpty(t, g.GuidanceText)
}

func TestGetGuidanceByMood_UnknownMood(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	seedDefault(t, store)

	_, err := store.GetGuidanceByMood(ctx, "nonexistent_mood")
	require.Error(t, err)

	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code, "an unknown mood is a lookup miss, not a broken seed")
}

func TestGetGuidanceByMood_BrokenSeed(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	seedDefault(t, store)

	t.Run("guidance record missing", func(t *testing.T) {
		require.NoError(t, store.delete([]byte(guidancePrefix+domain.GuidanceIDFor("fear_future"))))

		_, err := store.GetGuidanceByMood(ctx, "fear_future")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDataIntegrity)
	})

	t.Run("mood index missing", func(t *testing.T) {
		require.NoError(t, store.delete([]byte(guidanceByMoodPrefix+"fear_death")))

		_, err := store.GetGuidanceByMood(ctx, "fear_death")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDataIntegrity)
	})
}

func TestGetGuidance(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	seedDefault(t, store)

	g, err := store.GetGuidance(ctx, "guidance_despair_world")
	require.NoError(t, err)
	assert.Equal(t, "despair_world", g.MoodID)

	_, err = store.GetGuidance(ctx, "guidance_unknown")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
