package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	domainErrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct {
}

func NewGitService() *GitService {
	return &GitService{}
}

// runGit ejecuta un subcomando de git capturando stderr para poder
// propagarlo en el error
func (s *GitService) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", domainErrors.NewGitError(args, exitCode, strings.TrimSpace(stderr.String()), err)
	}

	return string(output), nil
}

// GetDiff devuelve el diff entre el checkout actual y targetBranch. El texto
// se trata como opaco: no se valida ni se trunca.
func (s *GitService) GetDiff(ctx context.Context, targetBranch string) (string, error) {
	return s.runGit(ctx, "diff", targetBranch)
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := s.runGit(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}

	branchName := strings.TrimSpace(output)
	if branchName == "" {
		return "", fmt.Errorf("no se pudo detectar el nombre de la branch")
	}

	return branchName, nil
}

func (s *GitService) GetRepoInfo(ctx context.Context) (models.RepoInfo, error) {
	output, err := s.runGit(ctx, "remote", "get-url", "origin")
	if err != nil {
		return models.RepoInfo{}, err
	}

	return parseRepoURL(strings.TrimSpace(output))
}

func parseRepoURL(url string) (models.RepoInfo, error) {
	sshRegex := regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex := regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		return models.RepoInfo{
			Owner:    matches[2],
			Name:     strings.TrimSuffix(matches[3], ".git"),
			Provider: detectProvider(matches[1]),
		}, nil
	}

	return models.RepoInfo{}, fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}

// BranchDiffSource adapta GitService a ports.DiffSource para una branch fija
type BranchDiffSource struct {
	service      ports.GitService
	targetBranch string
}

var _ ports.DiffSource = (*BranchDiffSource)(nil)

func NewBranchDiffSource(service ports.GitService, targetBranch string) *BranchDiffSource {
	return &BranchDiffSource{
		service:      service,
		targetBranch: targetBranch,
	}
}

func (s *BranchDiffSource) FetchDiff(ctx context.Context) (string, error) {
	return s.service.GetDiff(ctx, s.targetBranch)
}
