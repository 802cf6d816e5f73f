package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNFC_Idempotent(t *testing.T) {
	verse := "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन"

	once := NFC(verse)
	twice := NFC(once)

	assert.Equal(t, once, twice)
	assert.True(t, IsNFC(once))
}

func TestIsNFC_DecomposedInput(t *testing.T) {
	// "é" as 'e' + combining acute is NFD, not NFC.
	decomposed := "café"

	assert.False(t, IsNFC(decomposed))
	assert.True(t, IsNFC(NFC(decomposed)))
}

func TestHasDevanagari(t *testing.T) {
	assert.True(t, HasDevanagari("भय"))
	assert.True(t, HasDevanagari("mixed भय text"))
	assert.False(t, HasDevanagari("Bhaya"))
	assert.False(t, HasDevanagari(""))
}

func TestIsSlug(t *testing.T) {
	valid := []string{"fear", "anger_world", "guidance_fear_future", "chapter18", "a1_b2"}
	for _, s := range valid {
		assert.True(t, IsSlug(s), "%q should be a valid slug", s)
	}

	invalid := []string{"", "Fear", "fear-world", "fear world", "_fear", "fear_", "fear__world", "1fear"}
	for _, s := range invalid {
		assert.False(t, IsSlug(s), "%q should be rejected", s)
	}
}

func TestParseVerseReference(t *testing.T) {
	tests := []struct {
		ref     string
		chapter int
		verse   int
		ok      bool
	}{
		{"Bhagavad Gita 2.47", 2, 47, true},
		{"Bhagavad Gita 18.66", 18, 66, true},
		{"Bhagavad Gita 2.14", 2, 14, true},
		{"bhagavad gita 2.47", 0, 0, false},
		{"Bhagavad Gita 2:47", 0, 0, false},
		{"Bhagavad Gita 0.47", 0, 0, false},
		{"2.47", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ch, v, ok := ParseVerseReference(tt.ref)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.chapter, ch)
				assert.Equal(t, tt.verse, v)
			}
		})
	}
}

func TestParseVerseNumber(t *testing.T) {
	ch, v, ok := ParseVerseNumber("2.47")
	assert.True(t, ok)
	assert.Equal(t, 2, ch)
	assert.Equal(t, 47, v)

	for _, s := range []string{"", "2", "2.", ".47", "2.0", "0.4", "Bhagavad Gita 2.47", "2.47a"} {
		_, _, ok := ParseVerseNumber(s)
		assert.False(t, ok, "%q should be rejected", s)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "clean", Sanitize("clean"))
	assert.Equal(t, "clean", Sanitize("  clean \n"))
	assert.Equal(t, "ab", Sanitize("a\x00b"))
	assert.Equal(t, "", Sanitize("\x00"))
}
