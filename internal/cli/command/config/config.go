package config

import (
	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, config),
			c.newSetLangCommand(t, config),
			c.newSetModelCommand(t, config),
		},
	}
}
