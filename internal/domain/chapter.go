package domain

import "strconv"

// ChapterCount is how many chapters the Bhagavad Gita has; the seeded set
// is complete or invalid, nothing in between.
const ChapterCount = 18

// Chapter is one of the 18 static reference chapters, independent of the
// emotion/mood/guidance tree.
type Chapter struct {
	ID            string  `json:"id" validate:"required"`
	ChapterNumber int     `json:"chapter_number" validate:"required,min=1,max=18"`
	NameEnglish   string  `json:"name_english" validate:"required"`
	NameSanskrit  string  `json:"name_sanskrit" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	KeyTeaching   string  `json:"key_teaching" validate:"required"`
	Verses        []Verse `json:"verses" validate:"required,min=1,dive"`
}

// Verse is one sample verse inside a chapter. VerseNumber keeps the
// "chapter.verse" notation ("2.47") rather than a bare ordinal so the
// value reads the same as a citation.
type Verse struct {
	VerseNumber string `json:"verse_number" validate:"required"`
	Sanskrit    string `json:"sanskrit" validate:"required"`
	English     string `json:"english" validate:"required"`
}

// ChapterIDFor returns the canonical id for a chapter number:
// 2 -> "chapter_2".
func ChapterIDFor(number int) string {
	return "chapter_" + strconv.Itoa(number)
}
