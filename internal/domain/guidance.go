package domain

// GuidanceIDPrefix joins a mood id into its guidance id:
// "fear_future" -> "guidance_fear_future".
const GuidanceIDPrefix = "guidance_"

// Guidance is the terminal content record shown for a Mood: a verse, its
// translation, and commentary. The catalog keeps moods and guidance in
// bijection: every Mood has exactly one Guidance and no Guidance is
// orphaned.
type Guidance struct {
	ID                 string `json:"id" validate:"required,slug"`
	MoodID             string `json:"mood_id" validate:"required,slug"`
	Title              string `json:"title" validate:"required"`
	VerseReference     string `json:"verse_reference" validate:"required,verseref"`
	SanskritVerse      string `json:"sanskrit_verse" validate:"required"`
	EnglishTranslation string `json:"english_translation" validate:"required"`
	GuidanceText       string `json:"guidance_text" validate:"required"`
}

// GuidanceIDFor returns the canonical guidance id for a mood id.
func GuidanceIDFor(moodID string) string {
	return GuidanceIDPrefix + moodID
}
