package config

import (
	"path/filepath"
	"strings"

	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/schema"
)

// NormalizeRootDirectory makes dir absolute and appends a trailing slash so it can be used as a plain string
// prefix of the absolute paths the package manager reports. Symlinks are not resolved.
func NormalizeRootDirectory(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errUtils.Build(errUtils.Wrap(errUtils.ErrInvalidRootDirectory, err, "dir=%s", dir)).
			WithContext("root_directory", dir).
			Err()
	}
	return withTrailingSlash(abs), nil
}

func withTrailingSlash(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// RootPrefix is the prefix stripped from dependency graph paths.
func RootPrefix(cfg *schema.Configuration) string {
	return withTrailingSlash(cfg.RootDirectory)
}

// PackagePath is the root package directory passed to the dependency command.
func PackagePath(cfg *schema.Configuration) string {
	return resolvePath(cfg, cfg.RootPackage)
}

// TestPlanPath returns the test plan file, adding the configured extension when the name has none.
func TestPlanPath(cfg *schema.Configuration) string {
	name := cfg.TestPlan
	if ext := cfg.TestPlanExtension; ext != "" && !strings.HasSuffix(name, ext) {
		name += ext
	}
	return resolvePath(cfg, name)
}

// DependencyFilePath is where the generated dependency graph is stored.
func DependencyFilePath(cfg *schema.Configuration) string {
	return resolvePath(cfg, cfg.Dependencies.File)
}

func resolvePath(cfg *schema.Configuration, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.RootDirectory, p)
}

// ValidateForPrune checks the settings every command touching the graph needs.
// The test plan is only required when requireTestPlan is set.
func ValidateForPrune(cfg *schema.Configuration, requireTestPlan bool) error {
	if cfg.RootDirectory == "" {
		return errUtils.Build(errUtils.ErrMissingRootDirectory).
			WithHint("pass it as the first argument, use --root-directory, or set TESTPRUNE_ROOT_DIRECTORY").
			Err()
	}
	if !filepath.IsAbs(cfg.RootDirectory) {
		return errUtils.Build(errUtils.ErrInvalidRootDirectory).
			WithHint("the root directory must be absolute to match the paths in the dependency graph").
			WithContext("root_directory", cfg.RootDirectory).
			Err()
	}
	if cfg.RootPackage == "" && !cfg.Dependencies.SkipGenerate {
		return errUtils.Build(errUtils.ErrMissingRootPackage).
			WithHint("use --root-package or set root_package in testprune.yaml").
			Err()
	}
	if requireTestPlan && cfg.TestPlan == "" {
		return errUtils.Build(errUtils.ErrMissingTestPlan).
			WithHint("use --test-plan or set test_plan in testprune.yaml").
			Err()
	}
	return nil
}
