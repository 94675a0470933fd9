// Package changes maps changed file paths to the names of the packages that own them.
package changes

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/testprune/errors"
	log "github.com/cloudposse/testprune/pkg/logger"
)

// PackageName returns the path segment that follows the first segment equal to packagesDir.
// "Packages/Foo/Sources/Foo.swift" with packagesDir "Packages" gives "Foo".
// Nested packages resolve to the outermost one: "Packages/Foo/Packages/Bar/x.swift" gives "Foo".
// It returns false when there is no such segment or nothing follows it.
func PackageName(path, packagesDir string) (string, bool) {
	if packagesDir == "" {
		return "", false
	}

	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		if seg != packagesDir {
			continue
		}
		if i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], true
		}
		return "", false
	}
	return "", false
}

// ValidatePatterns reports the first exclude pattern that is not a valid doublestar glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return errUtils.Build(errUtils.ErrInvalidExcludePattern).
				WithHintf("fix the pattern %q in the exclude list", p).
				WithContext("pattern", p).
				Err()
		}
	}
	return nil
}

// IsExcluded reports whether path matches any of the exclude patterns.
// Patterns must have been checked with ValidatePatterns.
func IsExcluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	return lo.SomeBy(patterns, func(p string) bool {
		return doublestar.MatchUnvalidated(p, slashed)
	})
}

// ExtractPackageNames returns the unique package names owning the changed files, in first-seen order.
// Files matching an exclude pattern, and files outside packagesDir, contribute nothing.
func ExtractPackageNames(paths []string, packagesDir string, exclude []string) ([]string, error) {
	if err := ValidatePatterns(exclude); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsExcluded(p, exclude) {
			log.Trace("Ignoring excluded file", "file", p)
			continue
		}
		name, ok := PackageName(p, packagesDir)
		if !ok {
			log.Trace("File is not inside a package", "file", p)
			continue
		}
		names = append(names, name)
	}

	return lo.Uniq(names), nil
}
