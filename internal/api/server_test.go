package api

import (
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shloka-app/shloka-server/internal/config"
	"github.com/shloka-app/shloka-server/internal/service"
	"github.com/shloka-app/shloka-server/internal/store"
)

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api     humatest.TestAPI
	cleanup func()
}

// setupTestServer creates a test server over a freshly seeded catalog.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServer(t, true)
}

// setupUnseededTestServer creates a test server whose store was never
// seeded, for exercising the integrity error paths.
func setupUnseededTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServer(t, false)
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shloka-api-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(filepath.Join(tmpDir, "db"), logger)
	require.NoError(t, err)

	contentService := service.NewContentService(st, logger)
	instanceService := service.NewInstanceService(st, logger, "0.0.0-test")

	ctx := context.Background()
	_, err = instanceService.InitializeInstance(ctx)
	require.NoError(t, err)

	if seed {
		_, err = contentService.SeedCatalog(ctx)
		require.NoError(t, err)
	}

	services := &Services{
		Content:  contentService,
		Instance: instanceService,
	}

	router := chi.NewRouter()

	humaConfig := huma.DefaultConfig("Shloka API Test", "0.0.0-test")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerRootRoutes()
	s.registerEmotionRoutes()
	s.registerMoodRoutes()
	s.registerGuidanceRoutes()
	s.registerChapterRoutes()
	s.registerHealthRoutes()

	testAPI := humatest.Wrap(t, api)

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{Server: s, api: testAPI, cleanup: cleanup}
}

// decodeError parses the coded error body shared by handler rejections
// and middleware rejections.
func decodeError(t *testing.T, body []byte) APIError {
	t.Helper()

	var apiErr APIError
	err := json.Unmarshal(body, &apiErr)
	require.NoError(t, err, "error body should be coded JSON: %s", body)
	return apiErr
}

func TestWelcome(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api")
	assert.Equal(t, http.StatusOK, resp.Code)

	var welcome WelcomeResponse
	err := json.Unmarshal(resp.Body.Bytes(), &welcome)
	require.NoError(t, err)

	assert.Equal(t, welcomeMessage, welcome.Message)
	assert.Equal(t, "0.0.0-test", welcome.Version)
	assert.NotEmpty(t, welcome.InstanceID)
}

// === Middleware ===

// setupFullServer builds a server through NewServer so the middleware
// stack is active, unlike the handler tests which wire routes directly.
func setupFullServer(t *testing.T, rps, burst int) (*Server, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shloka-api-full-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(filepath.Join(tmpDir, "db"), logger)
	require.NoError(t, err)

	contentService := service.NewContentService(st, logger)
	instanceService := service.NewInstanceService(st, logger, "0.0.0-test")

	ctx := context.Background()
	_, err = instanceService.InitializeInstance(ctx)
	require.NoError(t, err)
	_, err = contentService.SeedCatalog(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			CORSOrigins: "*",
		},
		RateLimit: config.RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
	}

	server := NewServer(st, &Services{Content: contentService, Instance: instanceService}, cfg, logger)

	cleanup := func() {
		server.Close()
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return server, cleanup
}

func TestRateLimit_RejectsWithCodedBody(t *testing.T) {
	server, cleanup := setupFullServer(t, 1, 1)
	defer cleanup()

	// Burst of one: the first request spends the budget.
	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	apiErr := decodeError(t, w.Body.Bytes())
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "RATE_LIMITED", apiErr.Code)
}

func TestRateLimit_HealthStaysUnmetered(t *testing.T) {
	server, cleanup := setupFullServer(t, 1, 1)
	defer cleanup()

	// Exhaust the API budget.
	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health checks bypass the limiter.
	for range 3 {
		req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_KeyedByClient(t *testing.T) {
	server, cleanup := setupFullServer(t, 1, 1)
	defer cleanup()

	// First client spends its budget.
	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client still has its own budget.
	req = httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	server, cleanup := setupFullServer(t, 25, 50)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
