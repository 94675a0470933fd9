package git

import (
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/testprune/errors"
	log "github.com/cloudposse/testprune/pkg/logger"
)

// OpenRepo opens the repository containing path, walking up to the nearest .git.
// Linked worktrees (a .git file) are supported.
func OpenRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, errUtils.Build(errUtils.Wrap(errUtils.ErrOpenGitRepo, err, "path=%s", path)).
			WithHint("run inside a git checkout or pass the changed files explicitly").
			Err()
	}
	return repo, nil
}

// RepoRoot returns the worktree root directory of repo.
func RepoRoot(repo *git.Repository) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", errUtils.Wrap(errUtils.ErrOpenGitRepo, err, "worktree")
	}
	return wt.Filesystem.Root(), nil
}

// ChangedFiles lists the files touched between baseRef and HEAD, relative to the repository root.
// The diff starts at the merge base of the two commits, like a pull request diff, and falls back to
// baseRef itself when they share no history. Renames report both the old and the new path.
func ChangedFiles(repo *git.Repository, baseRef string) ([]string, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrResolveRevision, err, "HEAD")
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrResolveRevision, err, "HEAD")
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return nil, errUtils.Build(errUtils.Wrap(errUtils.ErrResolveRevision, err, "ref=%s", baseRef)).
			WithHintf("make sure %s is fetched; shallow CI clones may need a deeper fetch", baseRef).
			Err()
	}
	baseCommit, err := repo.CommitObject(*baseHash)
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrResolveRevision, err, "ref=%s", baseRef)
	}

	from := baseCommit
	if bases, mbErr := baseCommit.MergeBase(headCommit); mbErr == nil && len(bases) > 0 {
		from = bases[0]
	}
	log.Debug("Comparing commits", "base", from.Hash.String(), "head", headCommit.Hash.String())

	fromTree, err := from.Tree()
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrGitDiff, err, "base tree")
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrGitDiff, err, "head tree")
	}

	changes, err := object.DiffTree(fromTree, headTree)
	if err != nil {
		return nil, errUtils.Wrap(errUtils.ErrGitDiff, err, "diff")
	}

	files := make([]string, 0, len(changes)*2)
	for _, c := range changes {
		if c.From.Name != "" {
			files = append(files, c.From.Name)
		}
		if c.To.Name != "" {
			files = append(files, c.To.Name)
		}
	}
	files = lo.Uniq(files)
	sort.Strings(files)

	log.Debug("Changed", "files", len(files))
	return files, nil
}
