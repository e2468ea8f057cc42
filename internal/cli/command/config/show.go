package config

import (
	"context"
	"fmt"
	"os"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": config.Language}))
			fmt.Printf("%s\n", t.GetMessage("model_label", 0, map[string]interface{}{"Model": config.DefaultModel}))

			if os.Getenv("GEMINI_API_KEY") == "" {
				fmt.Println(t.GetMessage("api.key_not_set", 0, nil))
			} else {
				fmt.Println(t.GetMessage("api.key_set", 0, nil))
			}

			return nil
		},
	}
}
