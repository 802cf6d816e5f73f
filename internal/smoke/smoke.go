// Package smoke walks the full emotion → mood → guidance tree of a
// running server and reports every mood whose guidance cannot be
// resolved. A zero missing count is the live proof of the catalog's core
// invariant: one guidance entry per mood, no orphans.
package smoke

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"golang.org/x/sync/errgroup"

	clientapi "github.com/shloka-app/shloka-server/internal/client/api"
)

// defaultConcurrency bounds parallel emotion walks. The tree is small;
// this is about not hammering a dev server, not throughput.
const defaultConcurrency = 4

// Runner walks the content tree of one server.
type Runner struct {
	client      *clientapi.Client
	out         io.Writer
	verbose     bool
	concurrency int
}

// New creates a runner. out receives the report table; pass io.Discard to
// keep a programmatic run quiet.
func New(client *clientapi.Client, out io.Writer, verbose bool) *Runner {
	return &Runner{
		client:      client,
		out:         out,
		verbose:     verbose,
		concurrency: defaultConcurrency,
	}
}

// MoodResult is the outcome for one mood.
type MoodResult struct {
	EmotionID string
	MoodID    string
	Title     string // guidance title when resolved
	Err       error  // nil when guidance resolved cleanly
}

// Report is the outcome of one full walk.
type Report struct {
	Emotions int
	Moods    int
	Results  []MoodResult
}

// Missing returns the results whose guidance did not resolve.
func (r *Report) Missing() []MoodResult {
	var out []MoodResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Run walks the tree and prints the report. The returned error covers
// walk-level failures (server unreachable, emotion list missing); per-mood
// guidance failures land in the report instead.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	emotions, err := r.client.Emotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emotions: %w", err)
	}
	if len(emotions) == 0 {
		return nil, fmt.Errorf("server returned no emotions; is the catalog seeded?")
	}

	var (
		mu      sync.Mutex
		results []MoodResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, emotion := range emotions {
		g.Go(func() error {
			moods, err := r.client.Moods(gctx, emotion.ID)
			if err != nil {
				return fmt.Errorf("list moods for %s: %w", emotion.ID, err)
			}

			local := make([]MoodResult, 0, len(moods))
			for _, mood := range moods {
				res := MoodResult{EmotionID: emotion.ID, MoodID: mood.ID}

				guidance, err := r.client.Guidance(gctx, mood.ID)
				switch {
				case err != nil:
					res.Err = err
				case guidance.MoodID != mood.ID:
					res.Err = fmt.Errorf("guidance %s references mood %q, want %q",
						guidance.ID, guidance.MoodID, mood.ID)
				default:
					res.Title = guidance.Title
				}

				local = append(local, res)
			}

			mu.Lock()
			results = append(results, local...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].EmotionID != results[j].EmotionID {
			return results[i].EmotionID < results[j].EmotionID
		}
		return results[i].MoodID < results[j].MoodID
	})

	report := &Report{
		Emotions: len(emotions),
		Moods:    len(results),
		Results:  results,
	}

	r.print(report)
	return report, nil
}

func (r *Runner) print(report *Report) {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)

	if r.verbose || len(report.Missing()) > 0 {
		t := uitable.New()
		t.MaxColWidth = 50
		t.AddRow("EMOTION", "MOOD", "GUIDANCE")
		for _, res := range report.Results {
			if res.Err != nil {
				t.AddRow(res.EmotionID, res.MoodID, bad.Sprintf("MISSING: %v", res.Err))
				continue
			}
			if r.verbose {
				t.AddRow(res.EmotionID, res.MoodID, ok.Sprint(res.Title))
			}
		}
		fmt.Fprintln(r.out, t)
	}

	missing := len(report.Missing())
	if missing == 0 {
		ok.Fprintf(r.out, "OK: %d emotions, %d moods, every mood resolves to guidance\n",
			report.Emotions, report.Moods)
	} else {
		bad.Fprintf(r.out, "FAIL: %d of %d moods have no resolvable guidance\n",
			missing, report.Moods)
	}
}
