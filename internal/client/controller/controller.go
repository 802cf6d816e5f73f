// Package controller implements the fetch-cache-retry routine every
// content screen runs: render the cached snapshot immediately, refresh
// from the network under a timeout, keep the cached render on transient
// failures with a non-blocking advisory, and retry once automatically
// before asking the user. One controller is created per screen and torn
// down with it.
package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// Defaults for the fetch bound and the automatic retry delay.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultRetryDelay   = time.Second
)

// autoRetryBudget is how many automatic retries one load gets. Further
// attempts require an explicit Retry call.
const autoRetryBudget = 1

// Advisory texts shown over a cached render when the refresh fails.
const (
	AdvisoryRetrying = "slow connection risk, retrying"
	AdvisoryStale    = "couldn't refresh, showing saved content"
)

// State is the tri-state UI model a load moves through.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind tells the controller whether the key names a list or a single
// detail record. The distinction only matters for NOT_FOUND: a missing
// detail must not keep showing a stale cached record as if it were
// current, while a list screen may.
type Kind int

const (
	KindList Kind = iota
	KindDetail
)

// Result is one observable snapshot of a load.
type Result[T any] struct {
	State State
	// Payload is valid when State is StateReady.
	Payload T
	// FromCache marks Payload as a cached snapshot rather than the
	// response of this load's fetch.
	FromCache bool
	// Advisory is the non-blocking notice shown over cached content when
	// the refresh behind it failed. Empty on a fresh render.
	Advisory string
	// Retrying reports that an automatic retry is pending after this
	// snapshot.
	Retrying bool
	// Err carries the failure when State is StateError, and the most
	// recent refresh failure when a cached render has an Advisory.
	Err *domainerrors.Error
}

// FetchFunc performs one network call. It must be idempotent: the
// controller invokes it again on retry.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// ValidateFunc checks a fetched payload for its content type before it is
// accepted: a list must be non-empty, a detail record must carry its
// required fields. Return a DATA_INTEGRITY error to reject.
type ValidateFunc[T any] func(T) error

// Cache is the persistent snapshot store behind the controller.
type Cache interface {
	Read(key string, dest any) (bool, error)
	Write(key string, value any) error
}

// Option configures a controller.
type Option[T any] func(*Controller[T])

// WithFetchTimeout bounds each fetch attempt.
func WithFetchTimeout[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.fetchTimeout = d }
}

// WithRetryDelay sets the pause before the automatic retry.
func WithRetryDelay[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.retryDelay = d }
}

// WithValidator sets the payload validator.
func WithValidator[T any](v ValidateFunc[T]) Option[T] {
	return func(c *Controller[T]) { c.validate = v }
}

// WithKind declares the content kind. The default is KindList.
func WithKind[T any](k Kind) Option[T] {
	return func(c *Controller[T]) { c.kind = k }
}

// WithOnChange registers an observer that receives every state
// transition in order. The observer runs under the controller's lock;
// keep it fast and do not call back into the controller from it.
func WithOnChange[T any](fn func(Result[T])) Option[T] {
	return func(c *Controller[T]) { c.onChange = fn }
}

// Controller runs the fetch-cache-retry routine for one screen. Load and
// Retry block until the load settles; intermediate transitions are
// delivered through the OnChange observer. A newer Load supersedes an
// older in-flight one: the older load's late results are discarded, never
// applied.
type Controller[T any] struct {
	cache        Cache
	validate     ValidateFunc[T]
	onChange     func(Result[T])
	kind         Kind
	fetchTimeout time.Duration
	retryDelay   time.Duration

	// root is cancelled by Close and aborts in-flight fetches and
	// pending retry sleeps.
	root       context.Context
	cancelRoot context.CancelFunc

	mu        sync.Mutex
	gen       uint64
	key       string
	fetch     FetchFunc[T]
	result    Result[T]
	hasCached bool
	cached    T
}

// New creates a controller over cache.
func New[T any](cache Cache, opts ...Option[T]) *Controller[T] {
	root, cancel := context.WithCancel(context.Background())
	c := &Controller[T]{
		cache:        cache,
		fetchTimeout: DefaultFetchTimeout,
		retryDelay:   DefaultRetryDelay,
		root:         root,
		cancelRoot:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close tears the controller down: in-flight fetches are cancelled and
// pending automatic retries abandoned. No transition is applied after
// Close returns.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.gen++ // orphan any in-flight load
	c.mu.Unlock()
	c.cancelRoot()
}

// Current returns the latest applied snapshot.
func (c *Controller[T]) Current() Result[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Load runs one full load for key: cached render first when a snapshot
// exists, then the bounded fetch, then the failure policy with one
// automatic retry. It blocks until the load settles and returns the
// settled snapshot. fetch must be idempotent.
func (c *Controller[T]) Load(ctx context.Context, key string, fetch FetchFunc[T]) Result[T] {
	if key == "" {
		res := Result[T]{
			State: StateError,
			Err:   domainerrors.Validation("load key must not be empty"),
		}
		c.mu.Lock()
		c.gen++
		c.applyLocked(c.gen, res)
		c.mu.Unlock()
		return res
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.key = key
	c.fetch = fetch
	c.hasCached = false
	var zero T
	c.cached = zero
	c.mu.Unlock()

	// Step 1: the cached snapshot renders before any network transition.
	// A snapshot that fails to decode counts as a miss.
	var cachedPayload T
	hit, err := c.cache.Read(key, &cachedPayload)
	if err != nil {
		hit = false
	}

	c.mu.Lock()
	if gen == c.gen {
		if hit {
			c.hasCached = true
			c.cached = cachedPayload
			c.applyLocked(gen, Result[T]{State: StateReady, Payload: cachedPayload, FromCache: true})
		} else {
			c.applyLocked(gen, Result[T]{State: StateLoading})
		}
	}
	c.mu.Unlock()

	return c.run(ctx, gen, key, fetch)
}

// Retry re-runs the network portion of the last load with a fresh
// automatic-retry budget. Manual retries are unbounded. The cached render
// from the original load stays in place while the retry runs.
func (c *Controller[T]) Retry(ctx context.Context) Result[T] {
	c.mu.Lock()
	if c.fetch == nil {
		c.mu.Unlock()
		return Result[T]{
			State: StateError,
			Err:   domainerrors.Validation("nothing to retry; call Load first"),
		}
	}
	c.gen++
	gen := c.gen
	key := c.key
	fetch := c.fetch
	loading := Result[T]{State: StateLoading}
	if c.hasCached {
		loading.Payload = c.cached
		loading.FromCache = true
	}
	c.applyLocked(gen, loading)
	c.mu.Unlock()

	return c.run(ctx, gen, key, fetch)
}

// run drives fetch attempts until the load settles or is superseded.
func (c *Controller[T]) run(ctx context.Context, gen uint64, key string, fetch FetchFunc[T]) Result[T] {
	var last Result[T]

	for attempt := 0; ; attempt++ {
		payload, err := c.fetchOnce(ctx, fetch)
		if err == nil {
			return c.applyFresh(gen, key, payload)
		}

		derr := classify(err)

		// A missing endpoint is fatal for the load: there is nothing to
		// retry against, and a cached render must not pretend otherwise.
		if derr.Code == domainerrors.CodeConfiguration {
			last = Result[T]{State: StateError, Err: derr}
			c.apply(gen, last)
			return last
		}

		retrying := attempt < autoRetryBudget && derr.Retryable()
		last = c.failureResult(derr, retrying)
		c.apply(gen, last)

		if !retrying {
			return last
		}
		if !c.pause(ctx, gen) {
			return last
		}
	}
}

// fetchOnce invokes fetch bounded by the fetch timeout and validates the
// payload on success.
func (c *Controller[T]) fetchOnce(ctx context.Context, fetch FetchFunc[T]) (T, error) {
	fctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	// Close also aborts the fetch.
	stop := context.AfterFunc(c.root, cancel)
	defer stop()

	payload, err := fetch(fctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if c.validate != nil {
		if verr := c.validate(payload); verr != nil {
			var zero T
			return zero, verr
		}
	}

	return payload, nil
}

// applyFresh writes the validated payload to the cache and settles the
// load as a fresh Ready. Both happen under the lock so a superseded load
// can neither overwrite the cache nor the visible state.
func (c *Controller[T]) applyFresh(gen uint64, key string, payload T) Result[T] {
	res := Result[T]{State: StateReady, Payload: payload}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return res
	}

	// Cache write failure is not a load failure: the fresh payload is
	// still the best content to show. The stale snapshot just survives
	// one round longer.
	_ = c.cache.Write(key, payload)

	c.hasCached = true
	c.cached = payload
	c.applyLocked(gen, res)
	return res
}

// failureResult decides what a failed attempt looks like on screen. With
// a cached render in place the load stays Ready over the saved content
// with an advisory; without one it becomes a full error. NOT_FOUND on a
// detail key always wins over the cache: the record the user asked for is
// gone, and saved content must not pass for current.
func (c *Controller[T]) failureResult(derr *domainerrors.Error, retrying bool) Result[T] {
	c.mu.Lock()
	hasCached := c.hasCached
	cached := c.cached
	c.mu.Unlock()

	detailGone := derr.Code == domainerrors.CodeNotFound && c.kind == KindDetail

	if hasCached && !detailGone {
		advisory := AdvisoryStale
		if retrying {
			advisory = AdvisoryRetrying
		}
		return Result[T]{
			State:     StateReady,
			Payload:   cached,
			FromCache: true,
			Advisory:  advisory,
			Retrying:  retrying,
			Err:       derr,
		}
	}

	return Result[T]{State: StateError, Retrying: retrying, Err: derr}
}

// pause sleeps the retry delay. It reports false when the wait was cut
// short by cancellation, teardown, or a newer load.
func (c *Controller[T]) pause(ctx context.Context, gen uint64) bool {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return false
	case <-c.root.Done():
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

// apply records res as the current snapshot unless the load was
// superseded or the controller closed.
func (c *Controller[T]) apply(gen uint64, res Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(gen, res)
}

func (c *Controller[T]) applyLocked(gen uint64, res Result[T]) {
	if gen != c.gen || c.root.Err() != nil {
		return
	}
	c.result = res
	if c.onChange != nil {
		c.onChange(res)
	}
}

// classify maps an arbitrary fetch error onto the coded taxonomy.
// Fetchers built on the api client already return coded errors; bare
// context deadlines (from the controller's own bound) become TIMEOUT and
// anything unrecognized counts as NETWORK.
func classify(err error) *domainerrors.Error {
	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		return derr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrTimeout.WithCause(err)
	}
	return domainerrors.Wrap(err, domainerrors.CodeNetwork, "fetch failed")
}
