package domain

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestMergeTablesExceptionWins(t *testing.T) {
	base := Table{
		"10.1.0.0": {Subnet: "10.1.0.0", CIDR: "16", Service: "svc", OldZone: "BLUE", NewZone: "RED"},
		"10.2.0.0": {Subnet: "10.2.0.0", CIDR: "16", Service: "svc", OldZone: "GREEN", NewZone: "GREEN"},
	}
	exceptions := Table{
		"10.1.0.0": {Subnet: "10.1.0.0", CIDR: "24", Service: ExceptionService, OldZone: "BLUE", NewZone: "BLACK"},
		"10.3.0.5": {Subnet: "10.3.0.5", CIDR: "32", Service: ExceptionService, OldZone: "RED", NewZone: "WHITE"},
	}

	merged := MergeTables(base, exceptions)

	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
	if merged["10.1.0.0"] != exceptions["10.1.0.0"] {
		t.Fatalf("expected exception entry, got %+v", merged["10.1.0.0"])
	}
	if merged["10.2.0.0"] != base["10.2.0.0"] {
		t.Fatalf("expected base entry, got %+v", merged["10.2.0.0"])
	}
	if base["10.1.0.0"].NewZone != "RED" {
		t.Fatal("expected base table to be left untouched")
	}
}

func TestNewTableLaterDuplicateWins(t *testing.T) {
	table := NewTable([]SubnetRecord{
		{Subnet: "10.0.0.0", CIDR: "8", OldZone: "BLUE"},
		{Subnet: "10.0.0.0", CIDR: "8", OldZone: "RED"},
	})
	if table["10.0.0.0"].OldZone != "RED" {
		t.Fatalf("expected later record to win, got %+v", table["10.0.0.0"])
	}
}

func TestBaseViewFetchesEveryCategory(t *testing.T) {
	var fetched []Category
	store := stubZoneStore{
		fetchCategoryFn: func(_ context.Context, category Category) ([]SubnetRecord, error) {
			fetched = append(fetched, category)
			return []SubnetRecord{{Subnet: "10." + string(category), CIDR: "8"}}, nil
		},
	}
	views := NewViews(store, ViewOptions{})

	table, err := views.Base(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fetched) != len(Categories()) {
		t.Fatalf("expected %d category fetches, got %d", len(Categories()), len(fetched))
	}
	if len(table) != len(Categories()) {
		t.Fatalf("expected %d records, got %d", len(Categories()), len(table))
	}
}

func TestAggregateUnavailableWhenColdLoadFails(t *testing.T) {
	store := stubZoneStore{
		fetchExceptionsFn: func(context.Context) ([]SubnetRecord, error) {
			return nil, errors.New("connection refused")
		},
	}
	views := NewViews(store, ViewOptions{})

	_, err := views.Aggregate(context.Background())
	if !errors.Is(err, ErrViewUnavailable) {
		t.Fatalf("expected ErrViewUnavailable, got %v", err)
	}
}

func TestViewsRefreshOnIndependentSchedules(t *testing.T) {
	clock := newFakeClock()
	store := &memoryStore{
		base: map[Category][]SubnetRecord{
			CategoryBlue: {{Subnet: "10.1.0.0", CIDR: "16", OldZone: "BLUE"}},
		},
	}
	views := NewViews(store, ViewOptions{Now: clock.Now})
	ctx := context.Background()

	if _, err := views.Aggregate(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.categoryFetches != len(Categories()) || store.exceptionCalls != 1 {
		t.Fatalf("unexpected initial fetches: categories=%d exceptions=%d", store.categoryFetches, store.exceptionCalls)
	}

	clock.Advance(ExceptionRefreshInterval)
	if _, err := views.Aggregate(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.categoryFetches != len(Categories()) {
		t.Fatalf("expected base view to stay cached, got %d category fetches", store.categoryFetches)
	}
	if store.exceptionCalls != 2 {
		t.Fatalf("expected exception view to reload, got %d calls", store.exceptionCalls)
	}

	clock.Advance(BaseRefreshInterval)
	if _, err := views.Aggregate(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.categoryFetches != 2*len(Categories()) {
		t.Fatalf("expected base view to reload, got %d category fetches", store.categoryFetches)
	}
}

func TestAggregateKeepsServingWhenReloadFails(t *testing.T) {
	clock := newFakeClock()
	fail := false
	store := stubZoneStore{
		fetchExceptionsFn: func(context.Context) ([]SubnetRecord, error) {
			if fail {
				return nil, errors.New("store down")
			}
			return []SubnetRecord{{Subnet: "10.9.9.9", CIDR: "32"}}, nil
		},
	}
	views := NewViews(store, ViewOptions{Now: clock.Now, LoadTimeout: time.Second})
	ctx := context.Background()

	if _, err := views.Aggregate(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	fail = true
	clock.Advance(time.Hour)
	table, err := views.Aggregate(ctx)
	if err != nil {
		t.Fatalf("expected stale table, got %v", err)
	}
	if _, ok := table["10.9.9.9"]; !ok {
		t.Fatal("expected previously loaded exception to keep serving")
	}
}

func TestAggregateLoadHonoursItsOwnDeadline(t *testing.T) {
	var exceptionCalls atomic.Int32
	store := stubZoneStore{
		fetchCategoryFn: func(_ context.Context, category Category) ([]SubnetRecord, error) {
			if category == CategoryBlue {
				time.Sleep(80 * time.Millisecond)
			}
			return nil, nil
		},
		fetchExceptionsFn: func(context.Context) ([]SubnetRecord, error) {
			exceptionCalls.Add(1)
			return nil, nil
		},
	}
	views := NewViews(store, ViewOptions{LoadTimeout: 20 * time.Millisecond})

	_, err := views.Aggregate(context.Background())
	if !errors.Is(err, ErrViewUnavailable) {
		t.Fatalf("expected ErrViewUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "deadline exceeded") {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if exceptionCalls.Load() != 0 {
		t.Fatalf("expected exception view not to load, got %d calls", exceptionCalls.Load())
	}
	if _, err := views.Base(context.Background()); err != nil {
		t.Fatalf("expected base view to keep its own load, got %v", err)
	}
}

func TestAggregateBacksOffAfterFailedReload(t *testing.T) {
	clock := newFakeClock()
	var fail atomic.Bool
	var exceptionCalls atomic.Int32
	store := stubZoneStore{
		fetchExceptionsFn: func(context.Context) ([]SubnetRecord, error) {
			exceptionCalls.Add(1)
			if fail.Load() {
				return nil, errors.New("store down")
			}
			return nil, nil
		},
	}
	views := NewViews(store, ViewOptions{Now: clock.Now, RetryBackoff: 5 * time.Second})
	ctx := context.Background()

	if _, err := views.Exceptions(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	fail.Store(true)
	clock.Advance(ExceptionRefreshInterval)
	for range 3 {
		if _, err := views.Exceptions(ctx); err != nil {
			t.Fatalf("expected stale table, got %v", err)
		}
	}
	if exceptionCalls.Load() != 2 {
		t.Fatalf("expected one failed reload, got %d calls", exceptionCalls.Load())
	}

	fail.Store(false)
	clock.Advance(5 * time.Second)
	if _, err := views.Exceptions(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if exceptionCalls.Load() != 3 {
		t.Fatalf("expected retry after backoff, got %d calls", exceptionCalls.Load())
	}
}
