package catalog

import "github.com/shloka-app/shloka-server/internal/domain"

// emotions are the top-level categories a user picks from. Each one
// carries three moods; see moods.go.
var emotions = []domain.Emotion{
	{
		ID:           "fear",
		NameEnglish:  "Fear",
		NameSanskrit: "भय (Bhaya)",
		Description:  "When you feel afraid, anxious, or worried about the future",
		Icon:         "😰",
	},
	{
		ID:           "anger",
		NameEnglish:  "Anger",
		NameSanskrit: "क्रोध (Krodha)",
		Description:  "When you feel frustrated, irritated, or filled with rage",
		Icon:         "😠",
	},
	{
		ID:           "grief",
		NameEnglish:  "Grief",
		NameSanskrit: "शोक (Shoka)",
		Description:  "When you feel sad, lost, or mourning a loss",
		Icon:         "😢",
	},
	{
		ID:           "confusion",
		NameEnglish:  "Confusion",
		NameSanskrit: "मोह (Moha)",
		Description:  "When you feel uncertain, lost, or unable to decide",
		Icon:         "😕",
	},
	{
		ID:           "detachment",
		NameEnglish:  "Detachment",
		NameSanskrit: "वैराग्य (Vairagya)",
		Description:  "When you feel disconnected, empty, or without purpose",
		Icon:         "😶",
	},
	{
		ID:           "joy",
		NameEnglish:  "Joy",
		NameSanskrit: "आनन्द (Ananda)",
		Description:  "When you feel happy, thankful, or quietly content",
		Icon:         "😊",
	},
	{
		ID:           "doubt",
		NameEnglish:  "Doubt",
		NameSanskrit: "संशय (Samshaya)",
		Description:  "When you question yourself, your faith, or what you have been taught",
		Icon:         "🤔",
	},
	{
		ID:           "pride",
		NameEnglish:  "Pride",
		NameSanskrit: "अहङ्कार (Ahankara)",
		Description:  "When you feel superior, entitled, or attached to your achievements",
		Icon:         "😤",
	},
	{
		ID:           "desire",
		NameEnglish:  "Desire",
		NameSanskrit: "काम (Kama)",
		Description:  "When you feel restless craving for wealth, pleasure, or recognition",
		Icon:         "🤩",
	},
	{
		ID:           "envy",
		NameEnglish:  "Envy",
		NameSanskrit: "ईर्ष्या (Irshya)",
		Description:  "When you resent what others have or who they are",
		Icon:         "😒",
	},
	{
		ID:           "despair",
		NameEnglish:  "Despair",
		NameSanskrit: "विषाद (Vishada)",
		Description:  "When you feel hopeless, defeated, or ready to give up",
		Icon:         "😞",
	},
}
