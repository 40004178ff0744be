package grep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchPlainSubstring(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.py", "def widget():\n    return render_widget()\n")
	writeTempFile(t, dir, "b.py", "def gadget():\n    pass\n")

	matches, err := Search(dir, nil, "widget", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, 1, matches[0].Line)
	require.Equal(t, 2, matches[1].Line)
}

func TestSearchIgnoreCase(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.py", "WIDGET = 1\n")

	matches, err := Search(dir, nil, "widget", Options{IgnoreCase: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestSearchRegex(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "a.py", "def foo_123():\n    pass\n")

	matches, err := Search(dir, nil, `foo_\d+`, Options{Regex: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestSearchBadRegexReturnsError(t *testing.T) {
	dir := t.TempDir()
	_, err := Search(dir, nil, "(unterminated", Options{Regex: true})
	require.Error(t, err)
}

func TestSearchNoFilesReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	matches, err := Search(dir, nil, "anything", Options{})
	require.NoError(t, err)
	require.Empty(t, matches)
}
