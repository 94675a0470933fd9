package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/testprune/errors"
)

// commitFiles writes files (path -> content, "" deletes) into the worktree and commits them.
func commitFiles(t *testing.T, repo *git.Repository, dir string, files map[string]string) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		full := filepath.Join(dir, name)
		if content == "" {
			_, err = wt.Remove(name)
			require.NoError(t, err)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err)
	}

	hash, err := wt.Commit("update", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash
}

func initRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return repo, dir
}

func TestChangedFiles(t *testing.T) {
	repo, dir := initRepo(t)

	base := commitFiles(t, repo, dir, map[string]string{
		"Packages/A/Sources/A/A.swift": "struct A {}",
		"Packages/B/Sources/B/B.swift": "struct B {}",
		"Packages/D/Sources/D/D.swift": "struct D {}",
		"README.md":                    "readme",
	})
	commitFiles(t, repo, dir, map[string]string{
		"Packages/B/Sources/B/B.swift": "struct B { let x = 1 }",
		"Packages/C/Sources/C/C.swift": "struct C {}",
		"Packages/D/Sources/D/D.swift": "",
	})

	files, err := ChangedFiles(repo, base.String())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Packages/B/Sources/B/B.swift",
		"Packages/C/Sources/C/C.swift",
		"Packages/D/Sources/D/D.swift",
	}, files)
}

func TestChangedFiles_SameCommit(t *testing.T) {
	repo, dir := initRepo(t)
	head := commitFiles(t, repo, dir, map[string]string{"Packages/A/a.swift": "a"})

	files, err := ChangedFiles(repo, head.String())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestChangedFiles_UnknownRef(t *testing.T) {
	repo, dir := initRepo(t)
	commitFiles(t, repo, dir, map[string]string{"a.txt": "a"})

	_, err := ChangedFiles(repo, "does-not-exist")
	assert.ErrorIs(t, err, errUtils.ErrResolveRevision)
}

func TestOpenRepo(t *testing.T) {
	repo, dir := initRepo(t)
	commitFiles(t, repo, dir, map[string]string{"Packages/A/a.swift": "a"})

	opened, err := OpenRepo(filepath.Join(dir, "Packages", "A"))
	require.NoError(t, err)

	root, err := RepoRoot(opened)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOpenRepo_NotARepo(t *testing.T) {
	_, err := OpenRepo(t.TempDir())
	assert.ErrorIs(t, err, errUtils.ErrOpenGitRepo)
}
