package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// GitService define las operaciones de git que necesita la herramienta
type GitService interface {
	// GetDiff devuelve el diff textual entre el checkout actual y targetBranch
	GetDiff(ctx context.Context, targetBranch string) (string, error)
	// GetCurrentBranch devuelve el nombre de la branch actual
	GetCurrentBranch(ctx context.Context) (string, error)
	// GetRepoInfo extrae owner/repo/proveedor de la URL del remote origin
	GetRepoInfo(ctx context.Context) (models.RepoInfo, error)
}
