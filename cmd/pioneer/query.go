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
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
	"github.com/BiradarSiddhant02/pioneer/pkg/query"
)

// runQuery enumerates call-graph or data-flow paths (spec §6.1, §4.E).
//
// --start/--end name the endpoints; either may be the sentinels START/END
// for call-graph queries (spec §4.E). --backtrace runs Backtrace on --end
// directly, without requiring --start START. --pattern resolves --start/
// --end as substring patterns against the index instead of exact names,
// erroring if a pattern matches zero or more than one symbol. --path
// switches to data-flow path enumeration (pkg/query's FindDataFlowPaths)
// instead of the call graph.
func runQuery(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	start := fs.String("start", "", "Start symbol, or START for backtrace roots")
	end := fs.String("end", "", "End symbol, or END for the synthetic sink")
	backtrace := fs.Bool("backtrace", false, "Enumerate callers of --end back to every root")
	pattern := fs.Bool("pattern", false, "Resolve --start/--end as substring patterns, not exact names")
	dataFlow := fs.Bool("path", false, "Enumerate data-flow paths instead of call-graph paths")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pioneer query --start <chain> --end <chain> [--backtrace] [--pattern] [--path]

Examples:
  pioneer query --start a.c::a --end b.c::b
  pioneer query --start main.c::caller --end END
  pioneer query --backtrace --end x.c::t
  pioneer query --path --start make --end use.x

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *backtrace && *dataFlow {
		perr.FatalError(perr.BadQueryShape("--backtrace and --path cannot be combined"), globals.JSON)
	}
	if *end == "" {
		perr.FatalError(perr.BadQueryShape("--end is required"), globals.JSON)
	}
	if !*backtrace && *start == "" {
		perr.FatalError(perr.BadQueryShape("--start is required unless --backtrace is given"), globals.JSON)
	}

	e, g := loadEngine(globals, persist.Full)

	resolve := func(chain string) string {
		if !*pattern || chain == query.Start || chain == query.End {
			return chain
		}
		matches := e.FindSymbols([]string{chain})
		switch len(matches) {
		case 0:
			perr.FatalError(perr.SymbolNotFound(chain, suggestNames(g, chain)), globals.JSON)
		case 1:
			return matches[0]
		default:
			perr.FatalError(perr.BadQueryShape(fmt.Sprintf("pattern %q matches %d symbols; narrow it", chain, len(matches))), globals.JSON)
		}
		return ""
	}

	resolvedEnd := resolve(*end)
	resolvedStart := ""
	if *start != "" {
		resolvedStart = resolve(*start)
	}

	var paths [][]string
	collect := func(path []string) bool {
		cp := make([]string, len(path))
		copy(cp, path)
		paths = append(paths, cp)
		return true
	}

	var err error
	switch {
	case *dataFlow:
		err = e.FindDataFlowPaths(resolvedStart, resolvedEnd, collect)
	case *backtrace:
		err = e.Backtrace(resolvedEnd, "", collect)
	default:
		err = e.FindPaths(resolvedStart, resolvedEnd, collect)
	}
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}

	printPaths(globals, paths)
}
