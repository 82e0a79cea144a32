package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Flarenzy/netzone/internal/refresh"
)

const (
	BaseRefreshInterval      = 24 * time.Hour
	ExceptionRefreshInterval = 60 * time.Second
	// The aggregate must not lag exception changes.
	AggregateRefreshInterval = ExceptionRefreshInterval
)

const (
	BaseViewName      = "base"
	ExceptionViewName = "exception"
	AggregateViewName = "aggregate"
)

type ViewOptions struct {
	Logger       *slog.Logger
	Observer     refresh.Observer
	LoadTimeout  time.Duration
	// RetryBackoff delays another reload after a failed one.
	RetryBackoff time.Duration
	// Now replaces time.Now for every view.
	Now func() time.Time
}

// Views are the three refreshable tables derived from the store. Each view
// refreshes on its own schedule; the aggregate merges whatever snapshots the
// base and exception views hold when it reloads.
type Views struct {
	base      *refresh.Cache[Table]
	exception *refresh.Cache[Table]
	aggregate *refresh.Cache[Table]
}

func NewViews(store ZoneStore, opts ViewOptions) *Views {
	v := &Views{}
	v.base = newView(BaseViewName, BaseRefreshInterval, func(ctx context.Context) (Table, error) {
		return loadBase(ctx, store)
	}, opts)
	v.exception = newView(ExceptionViewName, ExceptionRefreshInterval, func(ctx context.Context) (Table, error) {
		records, err := store.FetchExceptions(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch exceptions: %w", err)
		}
		return NewTable(records), nil
	}, opts)
	v.aggregate = newView(AggregateViewName, AggregateRefreshInterval, v.loadAggregate, opts)
	return v
}

func newView(name string, interval time.Duration, load refresh.Loader[Table], opts ViewOptions) *refresh.Cache[Table] {
	cacheOpts := []refresh.Option[Table]{
		refresh.WithLoadTimeout[Table](opts.LoadTimeout),
		refresh.WithRetryBackoff[Table](opts.RetryBackoff),
	}
	if opts.Logger != nil {
		cacheOpts = append(cacheOpts, refresh.WithLogger[Table](opts.Logger))
	}
	if opts.Observer != nil {
		cacheOpts = append(cacheOpts, refresh.WithObserver(opts.Observer, func(t Table) int { return len(t) }))
	}
	if opts.Now != nil {
		cacheOpts = append(cacheOpts, refresh.WithClock[Table](opts.Now))
	}
	return refresh.New(name, interval, load, cacheOpts...)
}

func (v *Views) Base(ctx context.Context) (Table, error) {
	return viewGet(ctx, v.base)
}

func (v *Views) Exceptions(ctx context.Context) (Table, error) {
	return viewGet(ctx, v.exception)
}

func (v *Views) Aggregate(ctx context.Context) (Table, error) {
	return viewGet(ctx, v.aggregate)
}

func viewGet(ctx context.Context, c *refresh.Cache[Table]) (Table, error) {
	t, err := c.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrViewUnavailable, err)
	}
	return t, nil
}

func loadBase(ctx context.Context, store ZoneStore) (Table, error) {
	var all []SubnetRecord
	for _, category := range Categories() {
		records, err := store.FetchSubnetsByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("fetch category %s: %w", category, err)
		}
		all = append(all, records...)
	}
	return NewTable(all), nil
}

// loadAggregate reads both input views. Their loads run under their own
// timeouts, so the aggregate deadline is checked after each read.
func (v *Views) loadAggregate(ctx context.Context) (Table, error) {
	base, err := v.Base(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after base view: %w", err)
	}
	exceptions, err := v.Exceptions(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after exception view: %w", err)
	}
	return MergeTables(base, exceptions), nil
}

// MergeTables returns a new table holding every base entry whose key has no
// exception, plus every exception. Neither input is modified.
func MergeTables(base, exceptions Table) Table {
	merged := make(Table, len(base)+len(exceptions))
	for subnet, rec := range base {
		if _, overridden := exceptions[subnet]; !overridden {
			merged[subnet] = rec
		}
	}
	for subnet, rec := range exceptions {
		merged[subnet] = rec
	}
	return merged
}
