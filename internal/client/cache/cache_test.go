package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "moods_fear", KeyMoods("fear"))
	assert.Equal(t, "guidance_anger_world", KeyGuidance("anger_world"))
	assert.Equal(t, "chapter_12", KeyChapter(12))
}

func TestReadMiss(t *testing.T) {
	c := New(t.TempDir())

	var dest []domain.Emotion
	hit, err := c.Read(KeyEmotions, &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestWriteReadRoundTrip(t *testing.T) {
	c := New(t.TempDir())

	in := []domain.Emotion{
		{ID: "fear", NameEnglish: "Fear", NameSanskrit: "भय (Bhaya)", Description: "d", Icon: "😰"},
		{ID: "anger", NameEnglish: "Anger", NameSanskrit: "क्रोध (Krodha)", Description: "d", Icon: "😡"},
	}
	require.NoError(t, c.Write(KeyEmotions, in))

	var out []domain.Emotion
	hit, err := c.Read(KeyEmotions, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, in, out)
}

func TestOverwriteLastWriteWins(t *testing.T) {
	c := New(t.TempDir())

	require.NoError(t, c.Write(KeyMoods("fear"), []domain.Mood{{ID: "fear_future"}}))
	require.NoError(t, c.Write(KeyMoods("fear"), []domain.Mood{{ID: "fear_loss"}, {ID: "fear_failure"}}))

	var out []domain.Mood
	hit, err := c.Read(KeyMoods("fear"), &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, out, 2)
	assert.Equal(t, "fear_loss", out[0].ID)
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	c := New(dir)
	require.NoError(t, c.Write(KeyChapter(2), domain.Chapter{ID: "chapter_2", ChapterNumber: 2}))

	reopened := New(dir)
	var out domain.Chapter
	hit, err := reopened.Read(KeyChapter(2), &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 2, out.ChapterNumber)
}

func TestCorruptSnapshotReportsError(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyEmotions), []byte("{not json"), 0o644))

	var out []domain.Emotion
	hit, err := c.Read(KeyEmotions, &out)
	assert.False(t, hit)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	c := New(t.TempDir())

	require.NoError(t, c.Write(KeyEmotions, []domain.Emotion{{ID: "fear"}}))
	require.NoError(t, c.Delete(KeyEmotions))

	var out []domain.Emotion
	hit, err := c.Read(KeyEmotions, &out)
	require.NoError(t, err)
	assert.False(t, hit)

	// Deleting a missing key is fine.
	require.NoError(t, c.Delete("never_written"))
}

func TestClear(t *testing.T) {
	c := New(t.TempDir())

	require.NoError(t, c.Write(KeyEmotions, []domain.Emotion{{ID: "fear"}}))
	require.NoError(t, c.Write(KeyChapters, []domain.Chapter{{ChapterNumber: 1}}))
	require.NoError(t, c.Clear())

	var emotions []domain.Emotion
	hit, err := c.Read(KeyEmotions, &emotions)
	require.NoError(t, err)
	assert.False(t, hit)

	// The cache keeps working after a clear.
	require.NoError(t, c.Write(KeyEmotions, []domain.Emotion{{ID: "joy"}}))
}
