package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/stmt/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "stmt-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "stmt")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/stmt")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

// runStmt runs the binary with dir as its working directory.
func runStmt(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runStmt(t, dir, "init", dir, "--prefix", "chk")
	require.NoError(t, err)

	expectedDirs := []string{
		"raw",
		filepath.Join("raw", "chk"),
		"clean",
		"arranged",
		"logs",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runStmt(t, dir, "init", dir, "--prefix", "sav")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "sav", cfg.Cleanup.Prefix)
	assert.Equal(t, "sav", cfg.Arrange.Group)
	assert.Equal(t, "clean", cfg.Paths.Clean)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runStmt(t, dir, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "raw/")
}

func TestInit_Git(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	_, err := runStmt(t, dir, "init", dir, "--git")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestInit_DefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	out, err := runStmt(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized stmt project")

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
}
