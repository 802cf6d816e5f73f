package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Healthy(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/healthz")
	require.Equal(t, http.StatusOK, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))

	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Components["database"].Status)
	assert.Equal(t, "healthy", health.Components["catalog"].Status)
	assert.NotEmpty(t, health.Components["database"].Latency)
}

func TestHealthCheck_UnseededCatalogIsUnhealthy(t *testing.T) {
	ts := setupUnseededTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))

	assert.Equal(t, "unhealthy", health.Status)
	// The store itself is reachable; only the catalog check fails.
	assert.Equal(t, "healthy", health.Components["database"].Status)
	assert.Equal(t, "unhealthy", health.Components["catalog"].Status)
}
