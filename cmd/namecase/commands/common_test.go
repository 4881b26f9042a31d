package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

// withStdin replaces os.Stdin with a file holding content for the rest of the test.
func withStdin(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)

	old := os.Stdin
	os.Stdin = f
	t.Cleanup(func() {
		os.Stdin = old
		_ = f.Close()
	})
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format))
	}
	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestOutputStructured(t *testing.T) {
	data := []DetectEntry{{Identifier: "fooBar", Styles: []string{"camelCase"}}}

	t.Run("json", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatJSON))
		})
		var got []DetectEntry
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatYAML))
		})
		var got []DetectEntry
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, data, got)
	})

	t.Run("text is not structured", func(t *testing.T) {
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"chatty", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LogLevel(tt.name))
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	t.Setenv(LogLevelEnv, "error")
	ConfigureLogging(false)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))

	ConfigureLogging(true)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestRenderTable(t *testing.T) {
	headers := []string{"STYLE", "EXAMPLE"}
	rows := [][]string{{"snake_case", "example_name"}, {"flatcase", "examplename"}}

	var buf bytes.Buffer
	RenderTable(&buf, headers, rows, false)
	assert.Equal(t, "STYLE       EXAMPLE\nsnake_case  example_name\nflatcase    examplename\n", buf.String())

	buf.Reset()
	RenderTable(&buf, headers, rows, true)
	assert.Equal(t, "snake_case\texample_name\nflatcase\texamplename\n", buf.String())

	buf.Reset()
	RenderTable(&buf, headers, nil, false)
	assert.Empty(t, buf.String())
}
