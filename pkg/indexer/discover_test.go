package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverFiltersIgnoredAndUnknownExtensions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte("def f(): pass"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("not code"), 0o644))

	vendor := filepath.Join(root, "vendor")
	require.NoError(t, os.MkdirAll(vendor, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(vendor, "dep.c"), []byte("int f() { return 0; }"), 0o644))

	hidden := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(hidden, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "config.py"), []byte("x = 1"), 0o644))

	files, err := Discover(root, DefaultIgnoreDirs())
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(root, "main.py"), files[0].Path)
}

func TestBatchSizeThresholds(t *testing.T) {
	cases := map[int]int{
		100:    10000,
		10000:  10000,
		10001:  5000,
		50000:  5000,
		50001:  2000,
	}
	for total, want := range cases {
		if got := BatchSize(total); got != want {
			t.Errorf("BatchSize(%d) = %d, want %d", total, got, want)
		}
	}
}
