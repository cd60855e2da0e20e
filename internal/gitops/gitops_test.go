package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	err := Init(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommit_AllFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello"), 0o644))

	hash, err := Commit(dir, "init: test commit", "Test Author", "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: test commit")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Test Author <test@example.com>")
}

func TestCommit_ScopedPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "journal.csv"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("b"), 0o644))

	_, err := Commit(dir, "books: post entry", "Tally", "books@tally.dev", "journal.csv")
	require.NoError(t, err)

	// Only the named path was staged and committed.
	status := exec.Command("git", "status", "--porcelain")
	status.Dir = dir
	out, err := status.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "scratch.txt")
	assert.NotContains(t, string(out), "journal.csv")
}
