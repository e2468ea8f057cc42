package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations_DefaultsToEnglish(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	msg := trans.GetMessage("error.missing_target_branch", 0, nil)
	assert.Equal(t, "Target branch is required", msg)
}

func TestGetMessage_TemplateData(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	msg := trans.GetMessage("ui.generating_description", 0, map[string]interface{}{
		"Model": "gemini-1.5-flash",
	})
	assert.Contains(t, msg, "gemini-1.5-flash")
}

func TestGetMessage_MissingID(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	msg := trans.GetMessage("does_not_exist", 0, nil)
	assert.Contains(t, msg, "Translation missing")
}

func TestSetLanguage_Unsupported(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	err = trans.SetLanguage("fr")
	assert.Error(t, err)
}
