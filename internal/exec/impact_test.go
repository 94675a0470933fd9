package exec

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/testprune/errors"
)

func TestImpactPipeline_UnknownChangedPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := pruneConfig(t)

	loader := NewMockDependencyLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(projectTree(config.RootDirectory), nil)

	p := &impactPipeline{config: config, loader: loader}
	report, err := p.run(context.Background(), []string{
		"Packages/B/Sources/B.swift",
		"Packages/Gone/Sources/Gone.swift",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "Gone"}, report.Changed)
	assert.Equal(t, []string{"Gone"}, report.Unknown)
	assert.Equal(t, []string{"A", "B", "Root"}, report.Impact.Names())
}

func TestImpactPipeline_AllKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := pruneConfig(t)

	loader := NewMockDependencyLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(projectTree(config.RootDirectory), nil)

	p := &impactPipeline{config: config, loader: loader}
	report, err := p.run(context.Background(), []string{"Packages/C/Sources/C.swift"}, "")
	require.NoError(t, err)

	assert.Empty(t, report.Unknown)
	assert.Equal(t, []string{"C", "Root"}, report.Impact.Names())
}

func TestGitChangedFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(name, content string) string {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		_, err := wt.Add(name)
		require.NoError(t, err)
		hash, err := wt.Commit("update", &git.CommitOptions{
			Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
		})
		require.NoError(t, err)
		return hash.String()
	}

	base := commit("Packages/A/Sources/A.swift", "struct A {}")
	commit("Packages/B/Sources/B.swift", "struct B {}")

	files, err := gitChangedFiles(filepath.Join(dir, "Packages"), base)
	require.NoError(t, err)
	assert.Equal(t, []string{"Packages/B/Sources/B.swift"}, files)
}

func TestGitChangedFiles_NotARepository(t *testing.T) {
	_, err := gitChangedFiles(t.TempDir(), "main")
	assert.ErrorIs(t, err, errUtils.ErrOpenGitRepo)
}
