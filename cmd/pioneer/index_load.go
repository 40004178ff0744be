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

package main

import (
	"os"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
	"github.com/BiradarSiddhant02/pioneer/pkg/query"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

const defaultIndexFile = ".pioneer.json"

// resolveIndexPath applies the --index override, falling back to
// .pioneer.json in the working directory (spec §6.2).
func resolveIndexPath(globals GlobalFlags) string {
	if globals.IndexPath != "" {
		return globals.IndexPath
	}
	return defaultIndexFile
}

// loadEngine opens the index at globals' resolved path with mode and
// wraps it in a query.Engine, or exits the process via FatalError.
func loadEngine(globals GlobalFlags, mode persist.LoadMode) (*query.Engine, *xref.Graph) {
	path := resolveIndexPath(globals)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			perr.FatalError(perr.IndexMissing(path), globals.JSON)
		}
		perr.FatalError(perr.IOError("cannot open index file "+path, err), globals.JSON)
	}
	defer f.Close()

	g, err := persist.Load(f, mode)
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}
	return query.New(g), g
}

// suggestNames ranks every indexed symbol name by edit distance against
// target, for "did you mean" diagnostics outside pkg/query's own lookups.
func suggestNames(g *xref.Graph, target string) []string {
	var candidates []string
	g.RangeSymbols(func(s xref.Symbol) {
		candidates = append(candidates, s.QualifiedName)
	})
	return perr.SuggestionsFor(target, candidates, 5)
}
