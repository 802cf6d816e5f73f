package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmotions_ReturnsSeededCatalog(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/emotions")
	require.Equal(t, http.StatusOK, resp.Code)

	var emotions []EmotionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &emotions))

	assert.Len(t, emotions, 11)

	byID := make(map[string]EmotionResponse, len(emotions))
	for _, e := range emotions {
		assert.NotEmpty(t, e.NameEnglish, "emotion %s", e.ID)
		assert.NotEmpty(t, e.NameSanskrit, "emotion %s", e.ID)
		assert.NotEmpty(t, e.Description, "emotion %s", e.ID)
		byID[e.ID] = e
	}

	fear, ok := byID["fear"]
	require.True(t, ok, "the seeded catalog always carries fear")
	assert.Equal(t, "Fear", fear.NameEnglish)
}

func TestListEmotions_UnseededStoreIsDataIntegrity(t *testing.T) {
	ts := setupUnseededTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/emotions")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	apiErr := decodeError(t, resp.Body.Bytes())
	assert.Equal(t, "DATA_INTEGRITY", apiErr.Code)
}
