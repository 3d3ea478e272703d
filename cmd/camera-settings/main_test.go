package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

// workdir moves the test into an empty directory with an empty HOME.
func workdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	return dir
}

func write(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return path
}

func TestRun_DefaultSettingsFile(t *testing.T) {
	dir := workdir(t)
	write(t, dir, "settings.json", `{"cameraLookMapping": {"mouseButton": "right", "modifiers": ["shift", "alt"]}}`)

	stdout, _, err := execute(t, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stdout, "shift+alt+right (cameraLookMapping)")
	assert.Contains(t, stdout, "settings OK")
}

func TestRun_ReportsDiagnostics(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"cameraPanMapping": {"mouseButton": "Right"}, "extraKey": 1}`)

	stdout, _, err := execute(t, "--no-color", path)
	require.NoError(t, err, "errors are not fatal without --strict")

	assert.Contains(t, stdout, `[cameraPanMapping] invalid mouseButton property: Right (did you mean "right"?)`)
	assert.Contains(t, stdout, "invalid setting: extraKey")
	assert.Contains(t, stdout, "1 error, 1 warning")
}

func TestRun_NoSuggestions(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"cameraPanMapping": {"mouseButton": "Right"}}`)

	stdout, _, err := execute(t, "--no-color", "--no-suggestions", path)
	require.NoError(t, err)

	assert.NotContains(t, stdout, "did you mean")
}

func TestRun_Strict(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"cameraZoomMapping": "middle"}`)

	_, _, err := execute(t, "--no-color", "--strict", path)
	require.Error(t, err)

	var status *exitStatus
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 2, status.code)
	assert.Contains(t, err.Error(), "invalid format for camera control setting: cameraZoomMapping")
}

func TestRun_StrictIgnoresWarnings(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"unknown": true}`)

	_, _, err := execute(t, "--no-color", "--strict", path)
	assert.NoError(t, err)
}

func TestRun_StrictFromConfig(t *testing.T) {
	dir := workdir(t)
	write(t, dir, "camera-settings.toml", "strict = true\nsettings_path = \"custom.json\"\n")
	write(t, dir, "custom.json", `{"cameraLookMapping": {}}`)

	_, _, err := execute(t, "--no-color")

	var status *exitStatus
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 2, status.code)
}

func TestRun_Stream(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"stray": 1}`)

	_, stderr, err := execute(t, "--no-color", "--stream", path)
	require.NoError(t, err)

	assert.Equal(t, "camera-settings: [warning] invalid setting: stray\n", stderr)
}

func TestRun_StreamHonoursNoSuggestions(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.json", `{"cameraPanMapping": {"mouseButton": "Right"}}`)

	stdout, stderr, err := execute(t, "--no-color", "--stream", "--no-suggestions", path)
	require.NoError(t, err)

	assert.Equal(t, "camera-settings: [error] [cameraPanMapping] invalid mouseButton property: Right\n", stderr)
	assert.NotContains(t, stdout, "did you mean")
}

func TestRun_Dump(t *testing.T) {
	dir := workdir(t)
	path := write(t, dir, "game.yaml", "cameraPanMapping2:\n  mouseButton: back\n")

	stdout, _, err := execute(t, "--no-color", "--dump", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "(mapping.CameraControlMappings)")
	assert.Contains(t, stdout, "back (cameraPanMapping2)")
}

func TestRun_FatalErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		contains string
	}{
		{"empty file", "settings.json", "  \n", "empty file"},
		{"syntax error", "settings.json", `{"cameraLookMapping": `, "invalid settings syntax"},
		{"root not object", "settings.json", `[]`, "settings root must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := workdir(t)
			write(t, dir, tt.file, tt.data)

			_, _, err := execute(t, "--no-color")
			require.Error(t, err)

			var status *exitStatus
			assert.False(t, errors.As(err, &status), "fatal errors use the default exit status")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		workdir(t)

		_, _, err := execute(t, "--no-color")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("too many args", func(t *testing.T) {
		workdir(t)

		_, _, err := execute(t, "a.json", "b.json")
		assert.Error(t, err)
	})
}
