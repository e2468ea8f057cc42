package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageError_IncludesUsageText(t *testing.T) {
	err := NewUsageError("missing target branch", "Usage: matepr <target-branch> [model]")

	assert.Contains(t, err.Error(), "missing target branch")
	assert.Contains(t, err.Error(), "Usage: matepr")
}

func TestGitError_SurfacesStderr(t *testing.T) {
	err := NewGitError([]string{"diff", "nonexistent-branch"}, 128, "fatal: ambiguous argument 'nonexistent-branch': unknown revision", nil)

	assert.Contains(t, err.Error(), "unknown revision")
	assert.Contains(t, err.Error(), "exit 128")
}

func TestGitError_Unwrap(t *testing.T) {
	inner := errors.New("exit status 128")
	err := NewGitError([]string{"diff"}, 128, "", inner)

	assert.ErrorIs(t, err, inner)
}

func TestAPIError_Kinds(t *testing.T) {
	tests := []struct {
		name string
		kind APIErrorKind
	}{
		{"auth failure", APIErrorAuth},
		{"quota failure", APIErrorQuota},
		{"transport failure", APIErrorTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.kind, "request failed", nil)
			assert.Contains(t, err.Error(), string(tt.kind))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"usage error", NewUsageError("missing arg", ""), ExitUsage},
		{"git error", NewGitError([]string{"diff"}, 128, "boom", nil), ExitGit},
		{"api error", NewAPIError(APIErrorTransport, "timeout", nil), ExitAPI},
		{"wrapped git error", fmt.Errorf("context: %w", NewGitError([]string{"diff"}, 1, "", nil)), ExitGit},
		{"wrapped api error", fmt.Errorf("context: %w", NewAPIError(APIErrorAuth, "bad key", nil)), ExitAPI},
		{"unknown error", errors.New("something else"), 1},
		{"config error", NewConfigError("GEMINI_API_KEY", "not set", nil), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}
