// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//

// Package grep implements recursive plain-text/regex search over the same
// file list the indexer discovers (spec §4.F). It is deliberately outside
// the xref graph: a CLI-level convenience, not a query over indexed data.
package grep

import (
	"bufio"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/indexer"
)

// Match is one line matching the search pattern.
type Match struct {
	Path string
	Line int
	Text string
}

// Options configures a search.
type Options struct {
	Regex      bool
	IgnoreCase bool
}

// matcher abstracts plain-substring vs. compiled-regex matching behind one
// interface so the parallel scan doesn't branch per line.
type matcher interface {
	MatchString(s string) bool
}

type substringMatcher struct {
	needle     string
	ignoreCase bool
}

func (m substringMatcher) MatchString(s string) bool {
	if m.ignoreCase {
		return strings.Contains(strings.ToLower(s), m.needle)
	}
	return strings.Contains(s, m.needle)
}

func newMatcher(pattern string, opts Options) (matcher, error) {
	if !opts.Regex {
		needle := pattern
		if opts.IgnoreCase {
			needle = strings.ToLower(needle)
		}
		return substringMatcher{needle: needle, ignoreCase: opts.IgnoreCase}, nil
	}
	expr := pattern
	if opts.IgnoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, perr.BadRegex(pattern, err)
	}
	return re, nil
}

// Search walks every file indexer.Discover selects under root, grepping
// each for pattern in parallel, and returns all matches sorted by path
// then line number. A worker-pool fan-out over a shared jobs channel,
// matching the teacher's parseFilesParallel pattern (plain goroutines +
// sync.WaitGroup + a mutex-guarded accumulator, not a worker-pool library).
func Search(root string, ignore []string, pattern string, opts Options) ([]Match, error) {
	files, err := indexer.Discover(root, ignore)
	if err != nil {
		return nil, perr.IOError("failed to walk "+root, err)
	}
	m, err := newMatcher(pattern, opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		matches []Match
	)
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				found := searchFile(files[i].Path, m)
				if len(found) == 0 {
					continue
				}
				mu.Lock()
				matches = append(matches, found...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Path != matches[j].Path {
			return matches[i].Path < matches[j].Path
		}
		return matches[i].Line < matches[j].Line
	})
	return matches, nil
}

// searchFile scans one file line by line. Read errors are skipped rather
// than failing the whole search: a file vanishing mid-walk or a permission
// error on one path shouldn't abort matches already found elsewhere.
func searchFile(path string, m matcher) []Match {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var out []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if m.MatchString(text) {
			out = append(out, Match{Path: path, Line: line, Text: text})
		}
	}
	return out
}
