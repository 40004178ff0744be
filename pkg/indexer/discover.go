package indexer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BiradarSiddhant02/pioneer/pkg/extract"
)

// DiscoveredFile is one source file selected for indexing.
type DiscoveredFile struct {
	Path string
	Lang extract.Language
}

// Discover walks root iteratively, pruning any directory whose name
// matches an ignore pattern or begins with "." (except "." and ".."), and
// collects regular files whose extension maps to a known language (spec
// §4.C Phase 1). The result is sorted deterministically by path.
func Discover(root string, ignore []string) ([]DiscoveredFile, error) {
	ignoreSet := make(map[string]bool, len(ignore))
	for _, p := range ignore {
		ignoreSet[p] = true
	}

	var files []DiscoveredFile
	type dirTask struct{ path string }
	stack := []dirTask{{path: root}}

	for len(stack) > 0 {
		n := len(stack) - 1
		dir := stack[n].path
		stack = stack[:n]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // IOError on a subdirectory: skip it, keep walking
		}
		for _, entry := range entries {
			name := entry.Name()
			if shouldSkip(name, ignoreSet) {
				continue
			}
			full := filepath.Join(dir, name)
			if entry.IsDir() {
				stack = append(stack, dirTask{path: full})
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}
			lang, ok := extract.ForExtension(strings.ToLower(filepath.Ext(name)))
			if !ok {
				continue
			}
			files = append(files, DiscoveredFile{Path: full, Lang: lang})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func shouldSkip(name string, ignore map[string]bool) bool {
	if name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	return ignore[name]
}

// BatchSize returns the population batch size for a given total file
// count, per spec §4.C Phase 3: 2000 above 50k files, 5000 above 10k,
// 10000 otherwise.
func BatchSize(totalFiles int) int {
	switch {
	case totalFiles > 50000:
		return 2000
	case totalFiles > 10000:
		return 5000
	default:
		return 10000
	}
}
