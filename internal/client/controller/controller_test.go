package controller

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shloka-app/shloka-server/internal/client/cache"
	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// fastOpts keeps test loads snappy: real durations, just short ones.
func fastOpts[T any](extra ...Option[T]) []Option[T] {
	opts := []Option[T]{
		WithFetchTimeout[T](200 * time.Millisecond),
		WithRetryDelay[T](10 * time.Millisecond),
	}
	return append(opts, extra...)
}

func testEmotions() []domain.Emotion {
	return []domain.Emotion{
		{ID: "fear", NameEnglish: "Fear"},
		{ID: "anger", NameEnglish: "Anger"},
	}
}

// fetchOK returns payload and counts attempts.
func fetchOK[T any](counter *atomic.Int32, payload T) FetchFunc[T] {
	return func(context.Context) (T, error) {
		counter.Add(1)
		return payload, nil
	}
}

// fetchFail fails every attempt with err and counts attempts.
func fetchFail[T any](counter *atomic.Int32, err error) FetchFunc[T] {
	return func(context.Context) (T, error) {
		counter.Add(1)
		var zero T
		return zero, err
	}
}

func TestLoadFreshSuccess(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions, fetchOK(&attempts, testEmotions()))

	assert.Equal(t, StateReady, res.State)
	assert.False(t, res.FromCache)
	assert.Empty(t, res.Advisory)
	assert.Nil(t, res.Err)
	assert.Equal(t, testEmotions(), res.Payload)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestLoadEmptyKeyIsValidationError(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), "", fetchOK(&attempts, testEmotions()))

	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeValidation, res.Err.Code)
	assert.Equal(t, int32(0), attempts.Load(), "fetch must not run for an invalid key")
}

func TestLoadIsIdempotent(t *testing.T) {
	store := cache.New(t.TempDir())
	c := New[[]domain.Emotion](store, fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	fetch := fetchOK(&attempts, testEmotions())

	first := c.Load(context.Background(), cache.KeyEmotions, fetch)
	second := c.Load(context.Background(), cache.KeyEmotions, fetch)

	assert.Equal(t, StateReady, first.State)
	assert.Equal(t, StateReady, second.State)
	assert.Equal(t, first.Payload, second.Payload, "unchanged backend must yield identical content")
	assert.Len(t, second.Payload, 2, "no duplication across loads")
}

func TestCachedRenderPrecedesNetworkTransition(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyEmotions, testEmotions()))

	var transitions []Result[[]domain.Emotion]
	var mu sync.Mutex
	c := New[[]domain.Emotion](store, fastOpts(
		WithOnChange(func(r Result[[]domain.Emotion]) {
			mu.Lock()
			transitions = append(transitions, r)
			mu.Unlock()
		}))...)
	defer c.Close()

	var attempts atomic.Int32
	fresh := append(testEmotions(), domain.Emotion{ID: "joy", NameEnglish: "Joy"})
	res := c.Load(context.Background(), cache.KeyEmotions, fetchOK(&attempts, fresh))

	assert.Equal(t, StateReady, res.State)
	assert.False(t, res.FromCache)
	assert.Len(t, res.Payload, 3)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, transitions, 2)
	assert.True(t, transitions[0].FromCache, "cached render must come first")
	assert.Len(t, transitions[0].Payload, 2)
	assert.False(t, transitions[1].FromCache)
}

func TestCachePrecedenceOverServerError(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyEmotions, testEmotions()))

	c := New[[]domain.Emotion](store, fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions,
		fetchFail[[]domain.Emotion](&attempts, domainerrors.Internal("boom")))

	// Never error: the cached value stays on screen with the advisory.
	assert.Equal(t, StateReady, res.State)
	assert.True(t, res.FromCache)
	assert.Equal(t, testEmotions(), res.Payload)
	assert.NotEmpty(t, res.Advisory)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeInternal, res.Err.Code)
}

func TestRetryBudgetIsExactlyOne(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions,
		fetchFail[[]domain.Emotion](&attempts, domainerrors.Timeout("no response")))

	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeTimeout, res.Err.Code)
	assert.False(t, res.Retrying, "the settled result must not promise more retries")
	assert.Equal(t, int32(2), attempts.Load(), "first attempt plus exactly one automatic retry")
}

func TestAutoRetryRecovers(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	fetch := func(context.Context) ([]domain.Emotion, error) {
		if attempts.Add(1) == 1 {
			return nil, domainerrors.Timeout("first attempt times out")
		}
		return testEmotions(), nil
	}

	res := c.Load(context.Background(), cache.KeyEmotions, fetch)

	assert.Equal(t, StateReady, res.State)
	assert.False(t, res.FromCache)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestConfigurationErrorWinsOverCache(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyEmotions, testEmotions()))

	c := New[[]domain.Emotion](store, fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions,
		fetchFail[[]domain.Emotion](&attempts, domainerrors.Configuration("no endpoint")))

	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeConfiguration, res.Err.Code)
	assert.Equal(t, int32(1), attempts.Load(), "configuration errors are never retried")
}

func TestNotFoundIsNotRetried(t *testing.T) {
	c := New[domain.Guidance](cache.New(t.TempDir()),
		fastOpts(WithKind[domain.Guidance](KindDetail))...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyGuidance("nonexistent_mood"),
		fetchFail[domain.Guidance](&attempts, domainerrors.NotFound("no such mood")))

	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeNotFound, res.Err.Code)
	assert.Equal(t, int32(1), attempts.Load(), "retrying cannot create a missing relation")
}

func TestNotFoundSupersedesCachedDetail(t *testing.T) {
	store := cache.New(t.TempDir())
	stale := domain.Guidance{ID: "guidance_gone", MoodID: "gone", Title: "Stale"}
	require.NoError(t, store.Write(cache.KeyGuidance("gone"), stale))

	c := New[domain.Guidance](store, fastOpts(WithKind[domain.Guidance](KindDetail))...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyGuidance("gone"),
		fetchFail[domain.Guidance](&attempts, domainerrors.NotFound("gone")))

	// A deleted detail record must not keep rendering as if current.
	assert.Equal(t, StateError, res.State)
}

func TestNotFoundKeepsCachedList(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyMoods("fear"), []domain.Mood{{ID: "fear_future", EmotionID: "fear"}}))

	c := New[[]domain.Mood](store, fastOpts[[]domain.Mood]()...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyMoods("fear"),
		fetchFail[[]domain.Mood](&attempts, domainerrors.NotFound("emotion gone")))

	assert.Equal(t, StateReady, res.State)
	assert.True(t, res.FromCache)
	assert.NotEmpty(t, res.Advisory)
}

func TestInvalidPayloadIsDataIntegrity(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts(
		WithValidator(func(list []domain.Emotion) error {
			if len(list) == 0 {
				return domainerrors.DataIntegrity("empty emotion list")
			}
			return nil
		}))...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions, fetchOK(&attempts, []domain.Emotion{}))

	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeDataIntegrity, res.Err.Code)
	assert.Equal(t, int32(2), attempts.Load(), "a bad response is retried like a server fault")
}

func TestInvalidPayloadDoesNotOverwriteCache(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyEmotions, testEmotions()))

	c := New[[]domain.Emotion](store, fastOpts(
		WithValidator(func(list []domain.Emotion) error {
			if len(list) == 0 {
				return domainerrors.DataIntegrity("empty emotion list")
			}
			return nil
		}))...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions, fetchOK(&attempts, []domain.Emotion{}))

	assert.Equal(t, StateReady, res.State)
	assert.True(t, res.FromCache)

	var snapshot []domain.Emotion
	hit, err := store.Read(cache.KeyEmotions, &snapshot)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, testEmotions(), snapshot, "rejected payloads must not replace the snapshot")
}

func TestManualRetryAfterSettledError(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	var attempts atomic.Int32
	fetch := func(context.Context) ([]domain.Emotion, error) {
		if attempts.Add(1) <= 2 {
			return nil, domainerrors.Timeout("still down")
		}
		return testEmotions(), nil
	}

	res := c.Load(context.Background(), cache.KeyEmotions, fetch)
	require.Equal(t, StateError, res.State)
	require.Equal(t, int32(2), attempts.Load())

	// The user's retry button: re-runs the fetch with a fresh budget.
	res = c.Retry(context.Background())
	assert.Equal(t, StateReady, res.State)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRetryWithoutLoadIsValidationError(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	res := c.Retry(context.Background())
	assert.Equal(t, StateError, res.State)
	require.NotNil(t, res.Err)
	assert.Equal(t, domainerrors.CodeValidation, res.Err.Code)
}

func TestNewerLoadSupersedesOlder(t *testing.T) {
	store := cache.New(t.TempDir())
	c := New[[]domain.Emotion](store, fastOpts[[]domain.Emotion]()...)
	defer c.Close()

	release := make(chan struct{})
	slowPayload := []domain.Emotion{{ID: "stale", NameEnglish: "Stale"}}
	slow := func(ctx context.Context) ([]domain.Emotion, error) {
		select {
		case <-release:
			return slowPayload, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	done := make(chan Result[[]domain.Emotion], 1)
	go func() {
		done <- c.Load(context.Background(), cache.KeyEmotions, slow)
	}()

	// Give the slow load a moment to get in flight, then navigate again.
	time.Sleep(20 * time.Millisecond)

	var attempts atomic.Int32
	fresh := c.Load(context.Background(), cache.KeyEmotions, fetchOK(&attempts, testEmotions()))
	require.Equal(t, StateReady, fresh.State)

	close(release)
	<-done

	// The superseded load's payload must not have overwritten state or
	// cache.
	current := c.Current()
	assert.Equal(t, testEmotions(), current.Payload)

	var snapshot []domain.Emotion
	hit, err := store.Read(cache.KeyEmotions, &snapshot)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, testEmotions(), snapshot)
}

func TestCloseCancelsPendingRetry(t *testing.T) {
	c := New[[]domain.Emotion](cache.New(t.TempDir()),
		WithFetchTimeout[[]domain.Emotion](200*time.Millisecond),
		WithRetryDelay[[]domain.Emotion](5*time.Second))
	// No deferred Close: closing is the point.

	var attempts atomic.Int32
	done := make(chan Result[[]domain.Emotion], 1)
	start := time.Now()
	go func() {
		done <- c.Load(context.Background(), cache.KeyEmotions,
			fetchFail[[]domain.Emotion](&attempts, domainerrors.Timeout("down")))
	}()

	time.Sleep(50 * time.Millisecond)
	c.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Load did not return after Close")
	}

	assert.Less(t, time.Since(start), 3*time.Second, "Close must cut the retry sleep short")
	assert.Equal(t, int32(1), attempts.Load(), "no retry after teardown")
}

func TestCloseSuppressesLateTransitions(t *testing.T) {
	var transitions atomic.Int32
	c := New[[]domain.Emotion](cache.New(t.TempDir()), fastOpts(
		WithOnChange(func(Result[[]domain.Emotion]) { transitions.Add(1) }))...)

	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		c.Load(context.Background(), cache.KeyEmotions,
			func(ctx context.Context) ([]domain.Emotion, error) {
				select {
				case <-release:
					return testEmotions(), nil
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			})
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	seen := transitions.Load()

	c.Close()
	close(release)
	<-done

	assert.Equal(t, seen, transitions.Load(), "no observer calls after Close")
}

func TestTimeoutAdvisoryOverCachePromisesRetry(t *testing.T) {
	store := cache.New(t.TempDir())
	require.NoError(t, store.Write(cache.KeyEmotions, testEmotions()))

	var mu sync.Mutex
	var advisories []string
	c := New[[]domain.Emotion](store, fastOpts(
		WithOnChange(func(r Result[[]domain.Emotion]) {
			if r.Advisory != "" {
				mu.Lock()
				advisories = append(advisories, r.Advisory)
				mu.Unlock()
			}
		}))...)
	defer c.Close()

	var attempts atomic.Int32
	res := c.Load(context.Background(), cache.KeyEmotions,
		fetchFail[[]domain.Emotion](&attempts, domainerrors.Timeout("slow")))

	assert.Equal(t, StateReady, res.State)
	assert.Equal(t, AdvisoryStale, res.Advisory)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, advisories, 2)
	assert.Equal(t, AdvisoryRetrying, advisories[0], "the first failure promises the automatic retry")
	assert.Equal(t, AdvisoryStale, advisories[1])
}
