package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type (
	MockDiffSource struct {
		mock.Mock
	}

	MockDescriber struct {
		mock.Mock
	}
)

func (m *MockDiffSource) FetchDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDescriber) GenerateDescription(ctx context.Context, model string, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}
