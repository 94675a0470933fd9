package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/testprune/errors"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"Packages/Foo/Sources/Foo/Foo.swift", "Foo", true},
		{"App/Packages/Bar/Package.swift", "Bar", true},
		{"/abs/proj/Packages/Baz/Tests/BazTests.swift", "Baz", true},
		{"Packages/Foo", "Foo", true},
		{"Packages/", "", false},
		{"Packages", "", false},
		{"App/Sources/main.swift", "", false},
		{"MyPackages/Foo/x.swift", "", false},
		{"Packages/Foo/Packages/Inner/x.swift", "Foo", true},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := PackageName(tt.path, "Packages")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackageName_EmptyPackagesDir(t *testing.T) {
	_, ok := PackageName("Packages/Foo/x.swift", "")
	assert.False(t, ok)
}

func TestExtractPackageNames(t *testing.T) {
	paths := []string{
		"Packages/Foo/Sources/Foo/A.swift",
		"README.md",
		"Packages/Bar/README.md",
		"Packages/Foo/Sources/Foo/B.swift",
		"Packages/Baz/Sources/Baz/C.swift",
		"App/AppDelegate.swift",
	}

	names, err := ExtractPackageNames(paths, "Packages", []string{"**/*.md"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Baz"}, names)

	names, err = ExtractPackageNames(paths, "Packages", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Bar", "Baz"}, names)
}

func TestExtractPackageNames_Empty(t *testing.T) {
	names, err := ExtractPackageNames(nil, "Packages", nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExtractPackageNames_InvalidPattern(t *testing.T) {
	_, err := ExtractPackageNames([]string{"Packages/Foo/a.swift"}, "Packages", []string{"[unclosed"})
	assert.ErrorIs(t, err, errUtils.ErrInvalidExcludePattern)
}

func TestIsExcluded(t *testing.T) {
	patterns := []string{"**/*.md", "Packages/*/Docs/**"}

	assert.True(t, IsExcluded("Packages/Foo/README.md", patterns))
	assert.True(t, IsExcluded("Packages/Foo/Docs/guide/intro.txt", patterns))
	assert.False(t, IsExcluded("Packages/Foo/Sources/Foo.swift", patterns))
	assert.False(t, IsExcluded("Packages/Foo/README.md", nil))
}
