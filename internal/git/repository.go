package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/Johannes-Berggren/webgit/internal/models"
)

// Repository reads remote and branch information for one working directory.
type Repository struct {
	dir    string
	runner Runner
}

func NewRepository(dir string, runner Runner) *Repository {
	return &Repository{dir: dir, runner: runner}
}

// Remotes runs `git remote -v` and parses it.
func (r *Repository) Remotes(ctx context.Context) ([]models.Remote, error) {
	output, err := r.runner.Run(ctx, r.dir, "remote", "-v")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			if fatal := checkFatal(cmdErr.Stderr); fatal != nil {
				return nil, fatal
			}
		}
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	return ParseRemotes(output)
}

// CurrentBranch runs `git branch -vv` and returns the checked-out branch.
func (r *Repository) CurrentBranch(ctx context.Context) (*models.BranchInfo, error) {
	output, err := r.runner.Run(ctx, r.dir, "branch", "-vv")
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	info, err := ParseCurrentBranch(output)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNoCurrentBranch
	}
	return info, nil
}
