// Package refresh provides a single-slot cache whose value is recomputed by a
// loader once its refresh interval has elapsed.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrUnavailable is returned when a cache has never loaded successfully.
var ErrUnavailable = errors.New("cache has no loaded value")

type Loader[T any] func(ctx context.Context) (T, error)

// Observer is told about every loader run.
type Observer interface {
	ObserveReload(name string, size int, took time.Duration, err error)
}

type snapshot[T any] struct {
	value    T
	loadedAt time.Time
}

// Cache holds one value of T. Get returns the current value while it is
// younger than the interval. The first Get after the interval elapses runs
// the loader synchronously; concurrent callers keep receiving the previous
// value until the new one is swapped in. Callers of a cache that has never
// loaded share a single loader run. A failed reload keeps the previous
// value.
type Cache[T any] struct {
	name     string
	interval time.Duration
	load     Loader[T]

	timeout  time.Duration
	backoff  time.Duration
	now      func() time.Time
	logger   *slog.Logger
	observer Observer
	size     func(T) int

	current   atomic.Pointer[snapshot[T]]
	failedAt  atomic.Pointer[time.Time]
	reloading atomic.Bool
	cold      singleflight.Group
}

type Option[T any] func(*Cache[T])

// WithClock replaces time.Now.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Cache[T]) { c.now = now }
}

func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *Cache[T]) { c.logger = logger }
}

func WithObserver[T any](observer Observer, size func(T) int) Option[T] {
	return func(c *Cache[T]) {
		c.observer = observer
		c.size = size
	}
}

// WithLoadTimeout sets a deadline on the context every loader run receives.
// The loader has to observe that context for the bound to hold. The loader
// context does not inherit the caller's cancellation or deadline, so one
// abandoned request cannot fail a load other callers are waiting on.
func WithLoadTimeout[T any](d time.Duration) Option[T] {
	return func(c *Cache[T]) { c.timeout = d }
}

// WithRetryBackoff holds off another reload for d after a reload of a
// loaded value fails. The previous value is served meanwhile. Zero retries on
// the next Get.
func WithRetryBackoff[T any](d time.Duration) Option[T] {
	return func(c *Cache[T]) { c.backoff = d }
}

func New[T any](name string, interval time.Duration, load Loader[T], opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		name:     name,
		interval: interval,
		load:     load,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache[T]) Name() string {
	return c.name
}

// LoadedAt returns the time of the last successful load, or the zero time.
func (c *Cache[T]) LoadedAt() time.Time {
	if snap := c.current.Load(); snap != nil {
		return snap.loadedAt
	}
	return time.Time{}
}

func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	snap := c.current.Load()
	if snap == nil {
		return c.loadCold(ctx)
	}
	if c.now().Sub(snap.loadedAt) < c.interval {
		return snap.value, nil
	}
	if c.backingOff(snap) {
		return snap.value, nil
	}
	if !c.reloading.CompareAndSwap(false, true) {
		return snap.value, nil
	}
	defer c.reloading.Store(false)

	// Another caller may have swapped in a fresh value between our read and
	// winning the flag.
	if latest := c.current.Load(); latest != snap && c.now().Sub(latest.loadedAt) < c.interval {
		return latest.value, nil
	}
	if c.backingOff(snap) {
		return snap.value, nil
	}

	next, err := c.reload(ctx)
	if err != nil {
		failedAt := c.now()
		c.failedAt.Store(&failedAt)
		c.logger.WarnContext(ctx, "cache reload failed, serving previous value",
			"cache", c.name, "loaded_at", snap.loadedAt, "err", err.Error())
		return snap.value, nil
	}
	return next.value, nil
}

// backingOff reports whether a reload of snap failed less than the backoff
// ago.
func (c *Cache[T]) backingOff(snap *snapshot[T]) bool {
	if c.backoff <= 0 {
		return false
	}
	failedAt := c.failedAt.Load()
	if failedAt == nil || failedAt.Before(snap.loadedAt) {
		return false
	}
	return c.now().Sub(*failedAt) < c.backoff
}

func (c *Cache[T]) loadCold(ctx context.Context) (T, error) {
	v, err, _ := c.cold.Do(c.name, func() (any, error) {
		if snap := c.current.Load(); snap != nil {
			return snap, nil
		}
		return c.reload(ctx)
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, err)
	}
	return v.(*snapshot[T]).value, nil
}

func (c *Cache[T]) reload(ctx context.Context) (*snapshot[T], error) {
	loadCtx := context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, c.timeout)
		defer cancel()
	}

	start := c.now()
	value, err := c.load(loadCtx)
	took := c.now().Sub(start)
	if err != nil {
		c.observe(value, took, err)
		return nil, err
	}

	snap := &snapshot[T]{value: value, loadedAt: c.now()}
	c.current.Store(snap)
	c.observe(value, took, nil)
	c.logger.DebugContext(ctx, "cache reloaded", "cache", c.name, "took", took)
	return snap, nil
}

func (c *Cache[T]) observe(value T, took time.Duration, err error) {
	if c.observer == nil {
		return
	}
	size := 0
	if err == nil && c.size != nil {
		size = c.size(value)
	}
	c.observer.ObserveReload(c.name, size, took, err)
}
