package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arosal/skillcheck/internal/models"
)

// MockResultRepository is a mock implementation of repository.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Save(ctx context.Context, summary models.ResultSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockResultRepository) Get(ctx context.Context, assessmentID int64) (*models.ResultSummary, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResultSummary), args.Error(1)
}

func (m *MockResultRepository) All(ctx context.Context) (map[int64]models.ResultSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.ResultSummary), args.Error(1)
}

func (m *MockResultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.ResultSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResultSummary), args.Error(1)
}

func (m *MockResultRepository) Delete(ctx context.Context, assessmentID int64) error {
	args := m.Called(ctx, assessmentID)
	return args.Error(0)
}
