package describe

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) GetDiff(ctx context.Context, targetBranch string) (string, error) {
	args := m.Called(ctx, targetBranch)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetCurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (models.RepoInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.RepoInfo), args.Error(1)
}
