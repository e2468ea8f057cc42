package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate pull request descriptions from your git diff with AI"

	[app_description]
	other = "matepr reads the diff between your current branch and a target branch, sends it to Gemini and prints a ready-to-paste PR description"

	[describe_arguments_usage]
	other = "Usage: matepr <target-branch> [model-identifier]"

	[describe_pr_flag_usage]
	other = "Generate the description from an open GitHub pull request instead of the local diff"

	[error.missing_target_branch]
	other = "Target branch is required"

	[error.missing_api_key]
	other = "GEMINI_API_KEY is not set. Export it with your Gemini API key before running matepr"

	[error.diff_failed]
	other = "Could not compute the diff against '{{.Branch}}'"

	[error.pr_diff_failed]
	other = "Could not fetch the diff for PR #{{.Number}}"

	[error.generation_failed]
	other = "Could not generate the PR description"

	[warning_empty_diff]
	other = "The diff against '{{.Branch}}' is empty; the generated description may not be useful"

	[ui.computing_diff]
	other = "Computing diff against '{{.Branch}}'..."

	[ui.fetching_pr_diff]
	other = "Fetching diff for PR #{{.Number}}..."

	[ui.generating_description]
	other = "Generating PR description with {{.Model}}..."

	[config_usage]
	other = "Manage matepr preferences"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the language used for prompts and messages"

	[config_set_lang_flag_usage]
	other = "Language code (en, es)"

	[config_set_model_usage]
	other = "Set the default Gemini model"

	[config_set_model_flag_usage]
	other = "Model identifier, e.g. gemini-1.5-flash"

	[unsupported_language]
	other = "Unsupported language. Available languages: en, es"

	[language_configured]
	other = "Language configured: {{.Lang}}"

	[model_configured]
	other = "Default model configured: {{.Model}}"

	[current_config]
	other = "Current configuration"

	[language_label]
	other = "Language: {{.Lang}}"

	[model_label]
	other = "Default model: {{.Model}}"

	[api.key_set]
	other = "Gemini API Key: set"

	[api.key_not_set]
	other = "Gemini API Key: not set (export GEMINI_API_KEY)"

	[help_command_usage]
	other = "Show help"
	`
