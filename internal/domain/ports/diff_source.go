package ports

import "context"

// DiffSource abstrae de dónde sale el diff: el working tree local contra una
// branch, o un pull request remoto.
type DiffSource interface {
	FetchDiff(ctx context.Context) (string, error)
}
