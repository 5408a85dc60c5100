package wish

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WishEval_Go/internal/sentiment"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (sentiment.Result, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(sentiment.Result), args.Error(1)
}

func (m *MockClassifier) Name() string { return "mock" }

type MockTally struct {
	mock.Mock
}

func (m *MockTally) Add(ctx context.Context, wishID string, increment float64) (float64, error) {
	args := m.Called(ctx, wishID, increment)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTally) Total(ctx context.Context, wishID string) (float64, error) {
	args := m.Called(ctx, wishID)
	return args.Get(0).(float64), args.Error(1)
}
