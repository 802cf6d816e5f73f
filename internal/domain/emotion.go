// Package domain defines the SHLOKA content entities. Emotions, moods,
// guidance, and chapters are seeded reference data: created once, never
// mutated at runtime. Bookmarks belong to the client alone.
package domain

// Emotion is a top-level user-selectable category ("Fear", "Anger").
// The catalog ships exactly eleven of them.
type Emotion struct {
	ID           string `json:"id" validate:"required,slug"`
	NameEnglish  string `json:"name_english" validate:"required"`
	NameSanskrit string `json:"name_sanskrit" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Icon         string `json:"icon" validate:"required"`
}
