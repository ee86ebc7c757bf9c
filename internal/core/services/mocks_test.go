package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{now: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func ptr[T any](v T) *T {
	return &v
}

type MockWeather struct {
	mock.Mock
}

func (m *MockWeather) CurrentWeather(ctx context.Context, city string) *domain.WeatherSnapshot {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.WeatherSnapshot)
}

type MockDog struct {
	mock.Mock
}

func (m *MockDog) RandomDog(ctx context.Context) *domain.DogSnapshot {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.DogSnapshot)
}

type MockInspiration struct {
	mock.Mock
}

func (m *MockInspiration) DailyInspiration(ctx context.Context) *domain.InspirationSnapshot {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.InspirationSnapshot)
}

type MockBook struct {
	mock.Mock
}

func (m *MockBook) DailyBook(ctx context.Context, day time.Time) *domain.BookSnapshot {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.BookSnapshot)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt domain.ReportPrompt) (string, bool) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Bool(1)
}

// failingStore always errors, like a Redis that went away.
type failingStore struct {
	loads int
	saves int
}

func (s *failingStore) Load(ctx context.Context, source string) (domain.DailyRecord, bool, error) {
	s.loads++
	return domain.DailyRecord{}, false, context.DeadlineExceeded
}

func (s *failingStore) Save(ctx context.Context, source string, record domain.DailyRecord) error {
	s.saves++
	return context.DeadlineExceeded
}
