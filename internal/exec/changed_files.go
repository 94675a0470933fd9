package exec

import (
	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/changes"
	g "github.com/cloudposse/testprune/pkg/git"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
)

// changedFilesFunc lists the files changed since baseRef in the repository containing dir.
type changedFilesFunc func(dir string, baseRef string) ([]string, error)

func gitChangedFiles(dir string, baseRef string) ([]string, error) {
	repo, err := g.OpenRepo(dir)
	if err != nil {
		return nil, err
	}
	root, err := g.RepoRoot(repo)
	if err != nil {
		return nil, err
	}
	log.Debug("Diffing git repository", "root", root, "base_ref", baseRef)
	return g.ChangedFiles(repo, baseRef)
}

// resolveChangedFiles returns files when any are given on the command line. Otherwise, when a base
// ref is configured, it asks git for the files changed since that ref.
func resolveChangedFiles(config *schema.Configuration, files []string, baseRef string, fromGit changedFilesFunc) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	if baseRef == "" {
		baseRef = config.Git.BaseRef
	}
	if baseRef == "" {
		log.Debug("No changed files given and no base ref configured")
		return files, nil
	}

	dir := config.RootDirectory
	if dir == "" {
		dir = "."
	}
	changed, err := fromGit(dir, baseRef)
	if err != nil {
		return nil, err
	}
	log.Debug("Collected changed files from git", "base_ref", baseRef, "files", len(changed))
	return changed, nil
}

// changedPackages maps the changed files to the names of the packages that own them.
func changedPackages(config *schema.Configuration, files []string) ([]string, error) {
	names, err := changes.ExtractPackageNames(files, config.PackagesDir, config.Exclude)
	if err != nil {
		return nil, errUtils.Build(err).WithContext("exclude", config.Exclude).Err()
	}
	log.Debug("Changed packages", "packages", names)
	return names, nil
}
