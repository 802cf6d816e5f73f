package smoke

import (
	"context"
	"encoding/json/v2"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/shloka-app/shloka-server/internal/client/api"
	"github.com/shloka-app/shloka-server/internal/domain"
)

// fakeContent is a minimal content server: two emotions, two moods each,
// with guidance configurable per mood.
type fakeContent struct {
	missing map[string]bool // mood ids answering 404 for guidance
	wrongID string          // mood id whose guidance references another mood
}

func (f *fakeContent) handler() http.Handler {
	emotions := []domain.Emotion{
		{ID: "fear", NameEnglish: "Fear"},
		{ID: "anger", NameEnglish: "Anger"},
	}
	moods := map[string][]domain.Mood{
		"fear":  {{ID: "fear_future", EmotionID: "fear"}, {ID: "fear_loss", EmotionID: "fear"}},
		"anger": {{ID: "anger_world", EmotionID: "anger"}, {ID: "anger_betrayal", EmotionID: "anger"}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/emotions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, emotions)
	})
	mux.HandleFunc("GET /api/moods/{emotionID}", func(w http.ResponseWriter, r *http.Request) {
		list, ok := moods[r.PathValue("emotionID")]
		if !ok {
			http.Error(w, `{"code":"NOT_FOUND","message":"no such emotion"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, list)
	})
	mux.HandleFunc("GET /api/guidance/{moodID}", func(w http.ResponseWriter, r *http.Request) {
		moodID := r.PathValue("moodID")
		if f.missing[moodID] {
			http.Error(w, `{"code":"NOT_FOUND","message":"no guidance"}`, http.StatusNotFound)
			return
		}
		refID := moodID
		if moodID == f.wrongID {
			refID = "some_other_mood"
		}
		writeJSON(w, domain.Guidance{
			ID:     domain.GuidanceIDFor(moodID),
			MoodID: refID,
			Title:  "Title for " + moodID,
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.MarshalWrite(w, v)
}

func TestRunFullyConsistent(t *testing.T) {
	srv := httptest.NewServer((&fakeContent{}).handler())
	defer srv.Close()

	runner := New(clientapi.New(srv.URL, "smoke-test"), io.Discard, false)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Emotions)
	assert.Equal(t, 4, report.Moods)
	assert.Empty(t, report.Missing(), "every mood must resolve to guidance")
}

func TestRunCountsMissingGuidance(t *testing.T) {
	fake := &fakeContent{missing: map[string]bool{"fear_loss": true, "anger_betrayal": true}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	var out strings.Builder
	runner := New(clientapi.New(srv.URL, "smoke-test"), &out, false)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	missing := report.Missing()
	require.Len(t, missing, 2)
	ids := []string{missing[0].MoodID, missing[1].MoodID}
	assert.ElementsMatch(t, []string{"fear_loss", "anger_betrayal"}, ids)
	assert.Contains(t, out.String(), "FAIL")
}

func TestRunFlagsMismatchedMoodReference(t *testing.T) {
	fake := &fakeContent{wrongID: "fear_future"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	runner := New(clientapi.New(srv.URL, "smoke-test"), io.Discard, false)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	missing := report.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, "fear_future", missing[0].MoodID)
	assert.ErrorContains(t, missing[0].Err, "references mood")
}

func TestRunUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	runner := New(clientapi.New(url, "smoke-test"), io.Discard, false)

	_, err := runner.Run(context.Background())
	assert.Error(t, err)
}

func TestResultsAreSorted(t *testing.T) {
	srv := httptest.NewServer((&fakeContent{}).handler())
	defer srv.Close()

	runner := New(clientapi.New(srv.URL, "smoke-test"), io.Discard, true)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.Equal(t, "anger_betrayal", report.Results[0].MoodID)
	assert.Equal(t, "fear_loss", report.Results[3].MoodID)
}
