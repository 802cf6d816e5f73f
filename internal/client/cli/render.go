package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/shloka-app/shloka-server/internal/client/controller"
	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

var (
	heading  = color.New(color.Bold, color.Underline)
	faint    = color.New(color.Faint)
	sanskrit = color.New(color.FgCyan)
	warnText = color.New(color.FgYellow)
	failText = color.New(color.FgRed, color.Bold)
	okText   = color.New(color.FgGreen)
)

// printHeading writes a screen title.
func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
}

// printAdvisory shows the non-blocking banner over cached content.
func printAdvisory(w io.Writer, advisory string) {
	warnText.Fprintf(w, "! %s\n", advisory)
}

// printCachedNote marks content that came from the local cache.
func printCachedNote(w io.Writer) {
	faint.Fprintln(w, "(from local cache)")
}

// printError renders the full failure screen for a load with nothing to
// show, including the escape hint that stands in for the retry button.
func printError(w io.Writer, err *domainerrors.Error) {
	fmt.Fprintln(w)
	failText.Fprintf(w, "✗ could not load content (%s)\n", err.Code.Kind())
	fmt.Fprintf(w, "  %s\n", err.Message)

	switch err.Code {
	case domainerrors.CodeConfiguration:
		faint.Fprintln(w, "  set the server address with --api or SHLOKA_API_URL")
	case domainerrors.CodeNotFound:
		faint.Fprintln(w, "  check the id and try a list command to see what exists")
	default:
		if err.Code.Retryable() {
			faint.Fprintln(w, "  rerun with --retry to try again")
		}
	}
}

// renderBanner prints the advisory or cached note for a settled result.
func renderBanner[T any](w io.Writer, res controller.Result[T]) {
	if res.Advisory != "" {
		printAdvisory(w, res.Advisory)
	} else if res.FromCache {
		printCachedNote(w)
	}
}

// newTable returns a uitable configured for screen-width content.
func newTable() *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = 60
	t.Wrap = true
	return t
}

// renderEmotions draws the emotion list screen.
func renderEmotions(w io.Writer, emotions []domain.Emotion) {
	printHeading(w, "How are you feeling?")

	t := newTable()
	t.AddRow("ID", "EMOTION", "SANSKRIT", "DESCRIPTION")
	for _, e := range emotions {
		t.AddRow(e.ID, e.Icon+" "+e.NameEnglish, e.NameSanskrit, e.Description)
	}
	fmt.Fprintln(w, t)
	faint.Fprintln(w, "pick one: shloka moods <id>")
}

// renderMoods draws the mood list screen for one emotion.
func renderMoods(w io.Writer, emotionID string, moods []domain.Mood) {
	printHeading(w, "Moods under "+emotionID)

	t := newTable()
	t.AddRow("ID", "MOOD", "DESCRIPTION")
	for _, m := range moods {
		t.AddRow(m.ID, m.Name, m.Description)
	}
	fmt.Fprintln(w, t)
	faint.Fprintln(w, "read the verse: shloka guidance <id>")
}

// renderGuidance draws the guidance detail screen.
func renderGuidance(w io.Writer, g domain.Guidance, bookmarked bool) {
	printHeading(w, g.Title)

	faint.Fprintln(w, g.VerseReference)
	if bookmarked {
		okText.Fprintln(w, "★ bookmarked")
	}
	fmt.Fprintln(w)
	sanskrit.Fprintln(w, g.SanskritVerse)
	fmt.Fprintln(w)
	fmt.Fprintln(w, g.EnglishTranslation)
	fmt.Fprintln(w)
	fmt.Fprintln(w, g.GuidanceText)
}

// renderChapters draws the chapter list screen.
func renderChapters(w io.Writer, chapters []domain.Chapter) {
	printHeading(w, "Chapters of the Bhagavad Gita")

	t := newTable()
	t.AddRow("NO.", "NAME", "SANSKRIT", "KEY TEACHING")
	for _, c := range chapters {
		t.AddRow(c.ChapterNumber, c.NameEnglish, c.NameSanskrit, c.KeyTeaching)
	}
	fmt.Fprintln(w, t)
	faint.Fprintln(w, "read one: shloka chapter <number>")
}

// renderChapter draws the chapter detail screen with its sample verses.
func renderChapter(w io.Writer, c domain.Chapter) {
	printHeading(w, fmt.Sprintf("Chapter %d — %s", c.ChapterNumber, c.NameEnglish))

	sanskrit.Fprintln(w, c.NameSanskrit)
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.Description)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Key teaching: %s\n", c.KeyTeaching)

	for _, v := range c.Verses {
		fmt.Fprintln(w)
		faint.Fprintf(w, "Verse %s\n", v.VerseNumber)
		sanskrit.Fprintln(w, v.Sanskrit)
		fmt.Fprintln(w, v.English)
	}
}

// renderBookmarks draws the bookmarks list screen.
func renderBookmarks(w io.Writer, list []domain.Bookmark) {
	printHeading(w, "Bookmarks")

	if len(list) == 0 {
		faint.Fprintln(w, "nothing saved yet; bookmark a verse with: shloka bookmark <moodId>")
		return
	}

	t := newTable()
	t.AddRow("MOOD", "TITLE", "VERSE", "SAVED")
	for _, b := range list {
		t.AddRow(b.Guidance.MoodID, b.Guidance.Title, b.Guidance.VerseReference,
			b.SavedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(w, t)
}
