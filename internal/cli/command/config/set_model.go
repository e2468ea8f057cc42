package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-model",
		Usage: t.GetMessage("config_set_model_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    t.GetMessage("config_set_model_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			model := command.String("model")

			config.DefaultModel = model
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("model_configured", 0, map[string]interface{}{"Model": model}))
			return nil
		},
	}
}
