// Package normalize provides text normalization helpers for catalog
// content: id slugs, verse references, and Devanagari script fields.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Catalog ids are authored lowercase tokens: "fear", "anger_world",
	// "guidance_fear_future".
	slugPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	// Verse references cite the source text: "Bhagavad Gita 2.47".
	versePattern = regexp.MustCompile(`^Bhagavad Gita ([1-9][0-9]*)\.([1-9][0-9]*)$`)
	// Bare verse numbers inside chapter records: "2.47".
	verseNumberPattern = regexp.MustCompile(`^([1-9][0-9]*)\.([1-9][0-9]*)$`)
)

// NFC returns s in Unicode Normalization Form C. Devanagari content is
// stored NFC so byte comparison and cache keys stay stable across sources.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// IsNFC reports whether s is already NFC-normalized.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

// HasDevanagari reports whether s contains at least one Devanagari rune.
func HasDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}

// IsSlug reports whether s is a valid catalog id slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ParseVerseReference extracts chapter and verse numbers from a reference
// like "Bhagavad Gita 2.47". ok is false when the format does not match.
func ParseVerseReference(ref string) (chapter, verse int, ok bool) {
	m := versePattern.FindStringSubmatch(ref)
	if m == nil {
		return 0, 0, false
	}
	chapter = atoi(m[1])
	verse = atoi(m[2])
	return chapter, verse, true
}

// ParseVerseNumber extracts chapter and verse numbers from the bare
// "chapter.verse" notation used inside chapter records, like "2.47".
func ParseVerseNumber(s string) (chapter, verse int, ok bool) {
	m := verseNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	chapter = atoi(m[1])
	verse = atoi(m[2])
	return chapter, verse, true
}

// Sanitize strips null bytes and trims surrounding whitespace. Content
// copied out of PDFs and transliteration tools occasionally carries both.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
