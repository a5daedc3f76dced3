package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MyFarm_Go/internal/event"
)

// MockBus is a mock implementation of event.Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// fixedSource returns v clamped to n-1
type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func ofType(t event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == t })
}
