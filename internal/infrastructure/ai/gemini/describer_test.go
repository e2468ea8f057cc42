package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	domainErrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return trans
}

func TestNewGeminiDescriber_MissingAPIKey(t *testing.T) {
	trans := newTestTranslations(t)

	_, err := NewGeminiDescriber(context.Background(), "", trans)

	require.Error(t, err)
	var cfgErr *domainErrors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestGenerateDescription_EmptyPrompt(t *testing.T) {
	trans := newTestTranslations(t)

	describer, err := NewGeminiDescriber(context.Background(), "test-key", trans)
	require.NoError(t, err)
	defer func() {
		_ = describer.Close()
	}()

	_, err = describer.GenerateDescription(context.Background(), "gemini-1.5-flash", "")
	assert.Error(t, err)
}

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domainErrors.APIErrorKind
	}{
		{
			name:     "unauthorized",
			err:      &googleapi.Error{Code: http.StatusUnauthorized, Message: "API key not valid"},
			expected: domainErrors.APIErrorAuth,
		},
		{
			name:     "forbidden",
			err:      &googleapi.Error{Code: http.StatusForbidden, Message: "permission denied"},
			expected: domainErrors.APIErrorAuth,
		},
		{
			name:     "quota exceeded",
			err:      &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota exceeded"},
			expected: domainErrors.APIErrorQuota,
		},
		{
			name:     "server error",
			err:      &googleapi.Error{Code: http.StatusInternalServerError, Message: "backend error"},
			expected: domainErrors.APIErrorTransport,
		},
		{
			name:     "network error",
			err:      errors.New("dial tcp: connection refused"),
			expected: domainErrors.APIErrorTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyAPIError("gemini-1.5-flash", tt.err)

			var apiErr *domainErrors.APIError
			require.True(t, errors.As(classified, &apiErr))
			assert.Equal(t, tt.expected, apiErr.Kind)
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}
