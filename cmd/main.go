package main

import (
	"context"
	"fmt"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MatePR/internal/cli/command/config"
	"github.com/Tomas-vilte/MatePR/internal/cli/command/describe"
	"github.com/Tomas-vilte/MatePR/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	domainErrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/git"
	"github.com/Tomas-vilte/MatePR/internal/ui"
	"github.com/Tomas-vilte/MatePR/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.ErrorLine(err.Error())
		os.Exit(domainErrors.ExitCode(err))
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	gitService := git.NewGitService()

	describerFactory := describe.DescriberFactory(func(ctx context.Context) (ports.Describer, error) {
		return gemini.NewGeminiDescriber(ctx, os.Getenv("GEMINI_API_KEY"), translations)
	})
	describeCommand := describe.NewDescribeCommand(gitService, describerFactory)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("describe", describeCommand); err != nil {
		log.Fatalf("Error al registrar el comando 'describe': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "matepr",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		ArgsUsage:   "<target-branch> [model-identifier]",
		Flags:       describeCommand.Flags(translations),
		Commands:    commands,
		// Sin subcomando, la invocación `matepr <target-branch> [model]` corre
		// el generador directamente.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return describeCommand.Run(ctx, cmd, translations, cfgApp)
		},
		EnableShellCompletion: true,
	}, nil
}
