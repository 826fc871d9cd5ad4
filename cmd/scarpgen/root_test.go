package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryancerium/scarp/internal/gen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRoot_dry_run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, err := execute(t, "convert", "--dry-run", "--out", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "would write convert_generated.go")
	assert.NoFileExists(t, filepath.Join(dir, "convert_generated.go"))
}

func TestRoot_write_then_check(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := execute(t, "convert", "primitive", "--out", dir, "--package", "units")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote convert_generated.go")
	assert.Contains(t, out, "wrote float32_test.go")

	content, err := os.ReadFile(filepath.Join(dir, "int64.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package units\n")

	out, err = execute(t, "convert", "primitive", "--out", dir, "--package", "units", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date: 15 files")

	require.NoError(t, os.Remove(filepath.Join(dir, "int64.go")))
	out, err = execute(t, "convert", "primitive", "--out", dir, "--package", "units", "--check")
	require.ErrorIs(t, err, gen.ErrStale)
	assert.Contains(t, err.Error(), "int64.go")
	assert.Contains(t, out, "stale")
}

func TestRoot_config(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "scarpgen.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(
		"out = \""+filepath.ToSlash(dir)+"\"\npackage = \"fromconfig\"\n",
	), 0o600))

	_, err := execute(t, "convert", "--config", manifest)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "convert_generated.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package fromconfig\n")

	_, err = execute(t, "convert", "--config", manifest, "--package", "fromflag")
	require.NoError(t, err)

	content, err = os.ReadFile(filepath.Join(dir, "convert_generated.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package fromflag\n")
}

func TestRoot_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badManifest := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badManifest, []byte("output = \"x\"\n"), 0o600))

	tests := map[string]struct {
		args      []string
		expectMsg string
	}{
		"unknown target": {
			args:      []string{"everything"},
			expectMsg: "invalid argument",
		},
		"exclusive flags": {
			args:      []string{"--dry-run", "--check"},
			expectMsg: "none of the others can be",
		},
		"unknown manifest key": {
			args:      []string{"--config", badManifest},
			expectMsg: `unknown key "output"`,
		},
		"missing manifest": {
			args:      []string{"--config", filepath.Join(dir, "missing.toml")},
			expectMsg: "parse TOML",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectMsg)
		})
	}
}
