package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandWritesPDF(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	input := filepath.Join(dir, "notes.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`
timestamps:
  - "00:00 Введение"
summary:
  - "Обход графа в ширину"
`), 0644))
	out := filepath.Join(dir, "notes.pdf")

	rootCmd.SetArgs([]string{"render", "--input", input, "--out", out, "--format", "json"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(data) > 5 && string(data[:5]) == "%PDF-")
}

func TestOpenOutput(t *testing.T) {
	_, err := openOutput("")
	assert.Error(t, err)

	w, err := openOutput("notes.pdf")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestWriteOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, writeOutput(nil, path, []byte("%PDF-1.3")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}
