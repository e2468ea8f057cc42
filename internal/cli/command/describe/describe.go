package describe

import (
	"context"
	"fmt"
	"os"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	domainErrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/git"
	githubvcs "github.com/Tomas-vilte/MatePR/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MatePR/internal/services"
	"github.com/Tomas-vilte/MatePR/internal/ui"
	"github.com/urfave/cli/v3"
)

// DescriberFactory construye el cliente de IA recién cuando se va a usar,
// para que los errores de uso no requieran credenciales
type DescriberFactory func(ctx context.Context) (ports.Describer, error)

type DescribeCommand struct {
	gitService       ports.GitService
	describerFactory DescriberFactory
}

func NewDescribeCommand(gitService ports.GitService, describerFactory DescriberFactory) *DescribeCommand {
	return &DescribeCommand{
		gitService:       gitService,
		describerFactory: describerFactory,
	}
}

func (c *DescribeCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Aliases:   []string{"d"},
		Usage:     t.GetMessage("app_usage", 0, nil),
		ArgsUsage: "<target-branch> [model-identifier]",
		Flags:     c.Flags(t),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return c.Run(ctx, cmd, t, config)
		},
	}
}

// Flags expone los flags del comando para que main pueda reusarlos en la
// acción raíz
func (c *DescribeCommand) Flags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "pr",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("describe_pr_flag_usage", 0, nil),
		},
	}
}

// Run ejecuta los tres pasos de la generación. La descripción va a stdout tal
// cual la devolvió el modelo, con un newline final; todo el progreso va a
// stderr.
func (c *DescribeCommand) Run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, config *cfg.Config) error {
	targetBranch := cmd.Args().Get(0)
	model := cmd.Args().Get(1)
	prNumber := int(cmd.Int("pr"))

	if targetBranch == "" && prNumber == 0 {
		return domainErrors.NewUsageError(
			t.GetMessage("error.missing_target_branch", 0, nil),
			t.GetMessage("describe_arguments_usage", 0, nil),
		)
	}

	describer, err := c.describerFactory(ctx)
	if err != nil {
		return err
	}

	var source ports.DiffSource
	var initialMsg string
	if prNumber > 0 {
		repoInfo, err := c.gitService.GetRepoInfo(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", t.GetMessage("error.pr_diff_failed", 0, map[string]interface{}{
				"Number": prNumber,
			}), err)
		}
		client := githubvcs.NewGitHubClient(repoInfo.Owner, repoInfo.Name, os.Getenv("GITHUB_TOKEN"))
		source = githubvcs.NewPRDiffSource(client, prNumber)
		initialMsg = t.GetMessage("ui.fetching_pr_diff", 0, map[string]interface{}{
			"Number": prNumber,
		})
	} else {
		source = git.NewBranchDiffSource(c.gitService, targetBranch)
		initialMsg = t.GetMessage("ui.computing_diff", 0, map[string]interface{}{
			"Branch": targetBranch,
		})
	}

	service := services.NewDescriptionService(describer, config, t)

	spinner := ui.NewSmartSpinner(initialMsg)
	spinner.Start()

	description, err := service.Generate(ctx, source, model, func(msg string) {
		spinner.UpdateMessage(msg)
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Println(description)
	return nil
}
