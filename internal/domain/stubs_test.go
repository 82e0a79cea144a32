package domain

import (
	"context"
	"sync"
	"time"
)

type stubZoneStore struct {
	fetchCategoryFn   func(context.Context, Category) ([]SubnetRecord, error)
	fetchExceptionsFn func(context.Context) ([]SubnetRecord, error)
	insertExceptionFn func(context.Context, SubnetRecord) (Exception, error)
}

func (s stubZoneStore) FetchSubnetsByCategory(ctx context.Context, category Category) ([]SubnetRecord, error) {
	if s.fetchCategoryFn == nil {
		return nil, nil
	}
	return s.fetchCategoryFn(ctx, category)
}

func (s stubZoneStore) FetchExceptions(ctx context.Context) ([]SubnetRecord, error) {
	if s.fetchExceptionsFn == nil {
		return nil, nil
	}
	return s.fetchExceptionsFn(ctx)
}

func (s stubZoneStore) InsertException(ctx context.Context, record SubnetRecord) (Exception, error) {
	if s.insertExceptionFn == nil {
		return Exception{Record: record}, nil
	}
	return s.insertExceptionFn(ctx, record)
}

// memoryStore keeps records in memory and counts fetches.
type memoryStore struct {
	mu              sync.Mutex
	base            map[Category][]SubnetRecord
	exceptions      []SubnetRecord
	categoryFetches int
	exceptionCalls  int
}

func (m *memoryStore) FetchSubnetsByCategory(_ context.Context, category Category) ([]SubnetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categoryFetches++
	return append([]SubnetRecord(nil), m.base[category]...), nil
}

func (m *memoryStore) FetchExceptions(context.Context) ([]SubnetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exceptionCalls++
	return append([]SubnetRecord(nil), m.exceptions...), nil
}

func (m *memoryStore) InsertException(_ context.Context, record SubnetRecord) (Exception, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exceptions = append(m.exceptions, record)
	return Exception{ID: ExceptionID("exc-1"), Record: record}, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// stubMatcher records calls and returns a fixed answer.
type stubMatcher struct {
	rec   SubnetRecord
	ok    bool
	calls int
	last  Table
}

func (m *stubMatcher) Match(_ string, candidates Table) (SubnetRecord, bool) {
	m.calls++
	m.last = candidates
	return m.rec, m.ok
}
