package catalog

import "github.com/shloka-app/shloka-server/internal/domain"

// moods are the specific sub-feelings under each emotion, three apiece.
// Ids are "<emotion>_<facet>".
var moods = []domain.Mood{
	// Fear
	{ID: "fear_future", EmotionID: "fear", Name: "Fear of the Future", Description: "Worried about what tomorrow will bring"},
	{ID: "fear_death", EmotionID: "fear", Name: "Fear of Death", Description: "Anxious about mortality and the unknown"},
	{ID: "fear_failure", EmotionID: "fear", Name: "Fear of Failure", Description: "Afraid of not being good enough"},

	// Anger
	{ID: "anger_injustice", EmotionID: "anger", Name: "Anger at Injustice", Description: "Upset about unfair treatment"},
	{ID: "anger_self", EmotionID: "anger", Name: "Anger at Myself", Description: "Frustrated with my own actions"},
	{ID: "anger_world", EmotionID: "anger", Name: "Anger at the World", Description: "Mad at how things are"},

	// Grief
	{ID: "grief_loss", EmotionID: "grief", Name: "Loss of a Loved One", Description: "Missing someone who has passed"},
	{ID: "grief_change", EmotionID: "grief", Name: "Loss of What Was", Description: "Mourning how things used to be"},
	{ID: "grief_health", EmotionID: "grief", Name: "Loss of Health", Description: "Struggling with physical decline"},

	// Confusion
	{ID: "confusion_purpose", EmotionID: "confusion", Name: "Lost About Purpose", Description: "Unsure why I am here"},
	{ID: "confusion_choice", EmotionID: "confusion", Name: "Unable to Decide", Description: "Don't know what to do"},
	{ID: "confusion_meaning", EmotionID: "confusion", Name: "Questioning Meaning", Description: "Wondering if life has meaning"},

	// Detachment
	{ID: "detachment_loneliness", EmotionID: "detachment", Name: "Feeling Alone", Description: "Disconnected from others"},
	{ID: "detachment_emptiness", EmotionID: "detachment", Name: "Inner Emptiness", Description: "Nothing brings joy anymore"},
	{ID: "detachment_world", EmotionID: "detachment", Name: "Withdrawn from Life", Description: "Don't care about worldly things"},

	// Joy
	{ID: "joy_gratitude", EmotionID: "joy", Name: "Overflowing with Gratitude", Description: "Thankful for what I have been given"},
	{ID: "joy_peace", EmotionID: "joy", Name: "Quiet Contentment", Description: "At ease with how things are"},
	{ID: "joy_celebration", EmotionID: "joy", Name: "Joy in Success", Description: "Delighted by good fortune"},

	// Doubt
	{ID: "doubt_faith", EmotionID: "doubt", Name: "Doubting My Faith", Description: "Unsure what I believe anymore"},
	{ID: "doubt_teachings", EmotionID: "doubt", Name: "Questioning the Teachings", Description: "Wondering whom to trust for answers"},
	{ID: "doubt_self", EmotionID: "doubt", Name: "Doubting Myself", Description: "Second-guessing my own judgment"},

	// Pride
	{ID: "pride_achievement", EmotionID: "pride", Name: "Pride in Achievement", Description: "Convinced my success is mine alone"},
	{ID: "pride_knowledge", EmotionID: "pride", Name: "Pride in Knowledge", Description: "Certain I know better than others"},
	{ID: "pride_status", EmotionID: "pride", Name: "Pride in Status", Description: "Looking down on those beneath me"},

	// Desire
	{ID: "desire_wealth", EmotionID: "desire", Name: "Craving Wealth", Description: "Never satisfied with what I earn"},
	{ID: "desire_pleasure", EmotionID: "desire", Name: "Chasing Pleasure", Description: "Restless for the next enjoyment"},
	{ID: "desire_recognition", EmotionID: "desire", Name: "Hungry for Recognition", Description: "Needing others to notice me"},

	// Envy
	{ID: "envy_success", EmotionID: "envy", Name: "Envy of Success", Description: "Resenting another's accomplishments"},
	{ID: "envy_happiness", EmotionID: "envy", Name: "Envy of Happiness", Description: "Bitter that others seem content"},
	{ID: "envy_possessions", EmotionID: "envy", Name: "Envy of Possessions", Description: "Coveting what belongs to others"},

	// Despair
	{ID: "despair_effort", EmotionID: "despair", Name: "Despair After Failure", Description: "My efforts never seem to matter"},
	{ID: "despair_future", EmotionID: "despair", Name: "No Hope for Tomorrow", Description: "Unable to see a way forward"},
	{ID: "despair_world", EmotionID: "despair", Name: "Despair at the World", Description: "Crushed by how broken everything seems"},
}
