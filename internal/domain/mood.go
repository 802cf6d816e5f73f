package domain

// Mood is a specific sub-feeling under an Emotion ("anger at the state of
// the world"). EmotionID must reference a seeded Emotion; a dangling
// reference is a data-integrity fault, never a transient one.
type Mood struct {
	ID          string `json:"id" validate:"required,slug"`
	EmotionID   string `json:"emotion_id" validate:"required,slug"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}
