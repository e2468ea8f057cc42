package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubClient crea un cliente para leer pull requests. Con token vacío se
// usa un cliente anónimo, suficiente para repositorios públicos.
func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gc := github.NewClient(httpClient)

	return &GitHubClient{
		client: gc,
		owner:  owner,
		repo:   repo,
	}
}

// GetPRDiff obtiene el diff crudo de un pull request. Es una operación de
// solo lectura: nunca se escribe nada de vuelta en GitHub.
func (ghc *GitHubClient) GetPRDiff(ctx context.Context, prNumber int) (string, error) {
	diff, _, err := ghc.client.PullRequests.GetRaw(ctx, ghc.owner, ghc.repo, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("error al obtener el diff del PR %d de Github: %w", prNumber, err)
	}

	return diff, nil
}

// PRDiffSource adapta GitHubClient a ports.DiffSource para un PR fijo
type PRDiffSource struct {
	client   *GitHubClient
	prNumber int
}

var _ ports.DiffSource = (*PRDiffSource)(nil)

func NewPRDiffSource(client *GitHubClient, prNumber int) *PRDiffSource {
	return &PRDiffSource{
		client:   client,
		prNumber: prNumber,
	}
}

func (s *PRDiffSource) FetchDiff(ctx context.Context) (string, error) {
	return s.client.GetPRDiff(ctx, s.prNumber)
}
